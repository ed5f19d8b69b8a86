package telegram

import (
	"strings"

	"github.com/aliskhannn/arabizi-coach/internal/domain/entities"
)

// Callback action constants.
const (
	actionPractice = "practice"
	actionMode     = "mode"
	actionStats    = "stats"
	actionReset    = "reset"
)

// Practice sub-actions.
const (
	practiceNext = "next"
	practiceSkip = "skip"
)

const (
	resetConfirm = "confirm"
	resetCancel  = "cancel"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

func buildPracticeNextCallback() string {
	return callbackData{Action: actionPractice, Params: []string{practiceNext}}.encode()
}

func buildPracticeSkipCallback() string {
	return callbackData{Action: actionPractice, Params: []string{practiceSkip}}.encode()
}

func buildModeCallback(mode entities.PromptMode) string {
	return callbackData{Action: actionMode, Params: []string{string(mode)}}.encode()
}

func buildStatsCallback() string {
	return actionStats
}

func buildResetConfirmCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetConfirm}}.encode()
}

func buildResetCancelCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetCancel}}.encode()
}
