// Package ocr adapts the tesseract binary to the OCREngine port. Output is
// requested as TSV so per-word confidences survive; words are regrouped into
// lines with an averaged confidence.
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"paxscan/internal/config"
	"paxscan/internal/domain"
	"paxscan/internal/port"
)

// Runner lets tests stub the external command.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	err := cmd.Run()
	return out.Bytes(), errb.Bytes(), err
}

// Engine shells out to tesseract.
type Engine struct {
	binary  string
	dataDir string
	timeout time.Duration
	runner  Runner
}

// NewEngine creates a tesseract-backed OCR engine.
func NewEngine(cfg *config.OCRConfig) *Engine {
	return NewEngineWithRunner(cfg, execRunner{})
}

// NewEngineWithRunner creates an engine with a custom command runner (for tests).
func NewEngineWithRunner(cfg *config.OCRConfig, runner Runner) *Engine {
	binary := cfg.Binary
	if binary == "" {
		binary = "tesseract"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Engine{binary: binary, dataDir: cfg.DataDir, timeout: timeout, runner: runner}
}

// Recognize runs one OCR pass at the requested accuracy level and returns
// recognized lines with confidences in [0,1]. No threshold filtering happens
// here; callers decide what to keep.
func (e *Engine) Recognize(ctx context.Context, image domain.ImageInput, level domain.AccuracyLevel) ([]port.Observation, error) {
	tmp, err := os.CreateTemp("", "paxscan-*"+extensionFor(image.ContentType))
	if err != nil {
		return nil, fmt.Errorf("creating temp image: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(image.Bytes); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("writing temp image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("closing temp image: %w", err)
	}

	args := []string{tmp.Name(), "stdout", "tsv"}
	if e.dataDir != "" {
		args = append(args, "--tessdata-dir", e.dataDir)
	}
	switch level {
	case domain.AccuracyFast:
		args = append(args, "--oem", "1", "--psm", "6", "-c", "tessedit_do_invert=0")
	default:
		args = append(args, "--oem", "1", "--psm", "3")
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	stdout, stderr, err := e.runner.Run(ctx, e.binary, args...)
	if err != nil {
		return nil, fmt.Errorf("tesseract (%s): %w: %s", level, err, truncate(string(stderr), 512))
	}
	obs := parseTSV(stdout)
	log.Printf("ocr.Engine: %s pass recognized %d lines in %s", level, len(obs), time.Since(start).Round(time.Millisecond))
	return obs, nil
}

// parseTSV regroups tesseract's per-word TSV rows into lines. A word's conf
// of -1 marks a structural row and is skipped; line confidence is the mean
// of its word confidences scaled to [0,1].
func parseTSV(out []byte) []port.Observation {
	type lineKey struct{ page, block, par, line string }

	var order []lineKey
	words := map[lineKey][]string{}
	confs := map[lineKey][]float64{}

	for i, row := range strings.Split(string(out), "\n") {
		cols := strings.Split(strings.TrimRight(row, "\r"), "\t")
		if i == 0 || len(cols) < 12 {
			continue
		}
		conf, err := strconv.ParseFloat(cols[10], 64)
		if err != nil || conf < 0 {
			continue
		}
		text := strings.TrimSpace(cols[11])
		if text == "" {
			continue
		}
		key := lineKey{cols[1], cols[2], cols[3], cols[4]}
		if _, ok := words[key]; !ok {
			order = append(order, key)
		}
		words[key] = append(words[key], text)
		confs[key] = append(confs[key], conf)
	}

	obs := make([]port.Observation, 0, len(order))
	for _, key := range order {
		var sum float64
		for _, c := range confs[key] {
			sum += c
		}
		obs = append(obs, port.Observation{
			Text:       strings.Join(words[key], " "),
			Confidence: sum / float64(len(confs[key])) / 100,
		})
	}
	return obs
}

// Lines filters observations below the confidence threshold and returns the
// surviving text lines in order.
func Lines(obs []port.Observation, minConfidence float64) []string {
	lines := make([]string, 0, len(obs))
	for _, o := range obs {
		if o.Confidence < minConfidence {
			continue
		}
		lines = append(lines, o.Text)
	}
	return lines
}

func extensionFor(contentType string) string {
	if contentType == "image/png" {
		return ".png"
	}
	return ".jpg"
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
