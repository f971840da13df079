package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/cartlab/internal/domain"
)

const unexpected = "Unexpected error (see logs)"

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns an error into a one-line status for the toast area.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		if msg := yamlMessage("", err); msg != "" {
			return msg
		}
		return unexpected
	}

	switch oe.Kind {
	case domain.KindNotFound:
		switch {
		case strings.HasPrefix(oe.Op, "workspacefinder"):
			return "Workspace not found"
		case strings.HasPrefix(oe.Op, "config"):
			return "Config not found"
		}
		return "Not found"

	case domain.KindOutOfRange:
		var re *domain.RangeError
		if errors.As(err, &re) {
			return "Out of range: " + re.Error()
		}
		return "Out of range"

	case domain.KindInvalidConfig:
		where := "config"
		if strings.TrimSpace(oe.Path) != "" {
			where = filepath.Base(oe.Path)
		}
		if msg := yamlMessage(where, err); msg != "" {
			return msg
		}
		return "Invalid config"

	case domain.KindInputClosed:
		return "Input closed"

	case domain.KindInvalidInput:
		if errors.Is(err, domain.ErrLineTooLong) {
			return "Line too long"
		}
		return "Invalid input"
	}

	return unexpected
}

// yamlMessage is empty unless err looks like a YAML syntax problem.
func yamlMessage(where string, err error) string {
	s := err.Error()
	line := extractLine(s)
	if line == "" && !looksLikeYAMLProblem(s) {
		return ""
	}

	msg := "Invalid YAML"
	if where != "" {
		msg += " at " + where
	}
	if line != "" {
		msg += " line " + line
	}
	return msg
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	if m := reLine.FindStringSubmatch(s); len(m) == 2 {
		return m[1]
	}
	return ""
}
