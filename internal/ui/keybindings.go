package ui

import tea "github.com/charmbracelet/bubbletea"

// --- Key Constants ---

func isKey(msg tea.KeyMsg, keys ...string) bool {
	for _, k := range keys {
		if msg.String() == k {
			return true
		}
	}
	return false
}

func isQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "q", "ctrl+c")
}

func isForceQuit(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyCtrlC
}

func isBack(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEsc {
		return true
	}
	return isKey(msg, "esc", "escape", "ctrl+[")
}

// isUp and isDown accept j/k only when vim keys are enabled.
func isUp(msg tea.KeyMsg, vim bool) bool {
	if vim && isKey(msg, "k") {
		return true
	}
	return isKey(msg, "up")
}

func isDown(msg tea.KeyMsg, vim bool) bool {
	if vim && isKey(msg, "j") {
		return true
	}
	return isKey(msg, "down")
}

func isEnter(msg tea.KeyMsg) bool {
	return isKey(msg, "enter", "return")
}

func isSpace(msg tea.KeyMsg) bool {
	return isKey(msg, " ")
}

func isFocusNext(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyTab
}

func isFocusPrev(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyShiftTab
}

func isSubmit(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyCtrlS
}

func isDelete(msg tea.KeyMsg) bool {
	return isKey(msg, "d", "x", "delete")
}
