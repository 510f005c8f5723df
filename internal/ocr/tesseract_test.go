package ocr_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paxscan/internal/config"
	"paxscan/internal/domain"
	"paxscan/internal/ocr"
	"paxscan/internal/port"
)

// stubRunner captures the command it was asked to run and returns canned output.
type stubRunner struct {
	name   string
	args   []string
	stdout []byte
	err    error
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.name = name
	s.args = args
	return s.stdout, []byte("tesseract warning"), s.err
}

const tsvHeader = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext"

func tsvRow(page, block, par, line, conf, text string) string {
	return strings.Join([]string{"5", page, block, par, line, "1", "0", "0", "10", "10", conf, text}, "\t")
}

func TestRecognize_GroupsWordsIntoLines(t *testing.T) {
	fixture := strings.Join([]string{
		tsvHeader,
		// Structural rows carry conf -1 and must be skipped.
		tsvRow("1", "1", "1", "1", "-1", ""),
		tsvRow("1", "1", "1", "1", "90", "Flight"),
		tsvRow("1", "1", "1", "1", "80", "6E"),
		tsvRow("1", "1", "1", "1", "70", "6252"),
		tsvRow("1", "1", "1", "2", "88", "HYD"),
		tsvRow("1", "1", "1", "2", "92", "IXC"),
		// Blank text is dropped even with a confidence.
		tsvRow("1", "1", "1", "2", "95", "  "),
		tsvRow("1", "2", "1", "1", "50", "Gate"),
	}, "\n")

	runner := &stubRunner{stdout: []byte(fixture)}
	engine := ocr.NewEngineWithRunner(&config.OCRConfig{}, runner)

	obs, err := engine.Recognize(context.Background(), domain.ImageInput{Bytes: []byte("img"), ContentType: "image/jpeg"}, domain.AccuracyHigh)
	require.NoError(t, err)
	require.Len(t, obs, 3)

	assert.Equal(t, "Flight 6E 6252", obs[0].Text)
	assert.InDelta(t, 0.80, obs[0].Confidence, 0.001)
	assert.Equal(t, "HYD IXC", obs[1].Text)
	assert.InDelta(t, 0.90, obs[1].Confidence, 0.001)
	assert.Equal(t, "Gate", obs[2].Text)
	assert.InDelta(t, 0.50, obs[2].Confidence, 0.001)
}

func TestRecognize_ArgumentsPerLevel(t *testing.T) {
	runner := &stubRunner{stdout: []byte(tsvHeader)}
	engine := ocr.NewEngineWithRunner(&config.OCRConfig{Binary: "tess5", DataDir: "/opt/tessdata"}, runner)

	_, err := engine.Recognize(context.Background(), domain.ImageInput{Bytes: []byte("img"), ContentType: "image/png"}, domain.AccuracyFast)
	require.NoError(t, err)

	assert.Equal(t, "tess5", runner.name)
	joined := strings.Join(runner.args, " ")
	assert.Contains(t, joined, "stdout tsv")
	assert.Contains(t, joined, "--tessdata-dir /opt/tessdata")
	assert.Contains(t, joined, "--oem 1 --psm 6 -c tessedit_do_invert=0")
	assert.True(t, strings.HasSuffix(runner.args[0], ".png"))

	_, err = engine.Recognize(context.Background(), domain.ImageInput{Bytes: []byte("img"), ContentType: "image/jpeg"}, domain.AccuracyHigh)
	require.NoError(t, err)
	joined = strings.Join(runner.args, " ")
	assert.Contains(t, joined, "--oem 1 --psm 3")
	assert.NotContains(t, joined, "tessedit_do_invert")
	assert.True(t, strings.HasSuffix(runner.args[0], ".jpg"))
}

func TestRecognize_CommandFailureIncludesStderr(t *testing.T) {
	runner := &stubRunner{err: errors.New("exit status 1")}
	engine := ocr.NewEngineWithRunner(&config.OCRConfig{}, runner)

	obs, err := engine.Recognize(context.Background(), domain.ImageInput{Bytes: []byte("img")}, domain.AccuracyHigh)
	assert.Nil(t, obs)
	assert.ErrorContains(t, err, "exit status 1")
	assert.ErrorContains(t, err, "tesseract warning")
}

func TestLines_FiltersByConfidence(t *testing.T) {
	obs := []port.Observation{
		{Text: "keep one", Confidence: 0.9},
		{Text: "drop", Confidence: 0.2},
		{Text: "keep two", Confidence: 0.41},
	}
	assert.Equal(t, []string{"keep one", "keep two"}, ocr.Lines(obs, 0.4))
	assert.Empty(t, ocr.Lines(nil, 0.4))
}
