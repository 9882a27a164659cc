package analyze

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/mnk/mnk"
	"github.com/nelhage/mnk/notation"
)

func TestAnalyze(t *testing.T) {
	c := &Command{quiet: true}
	c.mmopt.Limit = time.Hour
	b, _ := notation.ParseBoard(`2,2,x/1,1,x/1,x2 3`)
	var out bytes.Buffer
	require.NoError(t, c.analyze(context.Background(), &out, b))
	assert.Contains(t, out.String(), "AI analysis for second:")
	assert.Contains(t, out.String(), "move=c1 value=4,611,686,018,427,387,904")
}

func TestAnalyzeEvaluate(t *testing.T) {
	c := &Command{quiet: true, eval: true, mbn: true}
	b, _ := notation.ParseBoard(`2,2,x/1,1,x/1,x2 3`)
	var out bytes.Buffer
	require.NoError(t, c.analyze(context.Background(), &out, b))
	assert.Equal(t, "[MBN \"2,2,x/1,1,x/1,x2 3\"]\n value=-110\n", out.String())
}

func TestAnalyzeGameOver(t *testing.T) {
	c := &Command{quiet: true}
	b, _ := notation.ParseBoard(`1,1,1/2,2,x/x3 3`)
	var out bytes.Buffer
	require.NoError(t, c.analyze(context.Background(), &out, b))
	assert.Contains(t, out.String(), "first wins")
}

func TestApplyVariation(t *testing.T) {
	b, _ := mnk.New(3, 3)
	require.NoError(t, applyVariation(b, "b2 a1 c3"))
	assert.Equal(t, "2,x2/x,1,x/x2,1 3", notation.FormatBoard(b))
	assert.Error(t, applyVariation(b, "b2"))
	assert.Error(t, applyVariation(b, "zz"))
}
