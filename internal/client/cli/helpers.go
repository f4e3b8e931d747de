package cli

import (
	"fmt"
	"strings"
	"time"
)

// confirm запрашивает подтверждение y/N
func (c *Cli) confirm(prompt string) (bool, error) {
	answer, err := c.io.ReadInput(prompt + " [y/N]: ")
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

// formatDate приводит время к виду, в котором даты показываются на экранах
func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006 15:04")
}
