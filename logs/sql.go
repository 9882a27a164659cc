package logs

const createResultTable = `
CREATE TABLE IF NOT EXISTS results (
  id integer primary key autoincrement,
  time datetime not null,
  size int not null,
  k int not null,
  first varchar not null,
  second varchar not null,
  winner string not null,
  plies int not null,
  elapsed_ms int not null
)`

const createPlayerView = `
CREATE VIEW IF NOT EXISTS player_results (
  id, player, opponent, side, outcome, size, k, plies
) AS
SELECT id, second, first, 'second',
       CASE winner WHEN 'first' THEN 'lose' WHEN 'second' THEN 'win' ELSE 'draw' END,
       size, k, plies
 FROM results
UNION ALL
SELECT id, first, second, 'first',
       CASE winner WHEN 'first' THEN 'win' WHEN 'second' THEN 'lose' ELSE 'draw' END,
       size, k, plies
 FROM results
`

const insertStmt = `
INSERT INTO results (time, size, k, first, second, winner, plies, elapsed_ms)
VALUES (:time, :size, :k, :first, :second, :winner, :plies, :elapsed_ms)
`

const selectResults = `
SELECT id, time, size, k, first, second, winner, plies, elapsed_ms
FROM results
ORDER BY id DESC
LIMIT ?
`

const selectSummary = `
SELECT player,
       SUM(outcome = 'win') AS wins,
       SUM(outcome = 'lose') AS losses,
       SUM(outcome = 'draw') AS draws
FROM player_results
GROUP BY player
ORDER BY wins DESC, player
`
