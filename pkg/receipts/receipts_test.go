package receipts

import (
	"testing"
	"time"

	"github.com/chris/donation-reconciler/pkg/notifier"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	receipt := notifier.Receipt{
		Email:       "ada@example.org",
		PaymentDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.RequireFromString("9.41"),
		DisplayName: "Ada Lovelace",
		EditorName:  "ada_editor",
	}

	msg := render("donations@example.org", receipt)

	assert.Contains(t, msg, "To: ada@example.org\r\n")
	assert.Contains(t, msg, "Subject: Thank you for your donation\r\n")
	assert.Contains(t, msg, "Dear Ada Lovelace,")
	assert.Contains(t, msg, "$9.41")
	assert.Contains(t, msg, "June 1, 2024")
	assert.Contains(t, msg, `"ada_editor"`)
}

func TestRenderWithoutEditor(t *testing.T) {
	receipt := notifier.Receipt{
		Email:       "bob@example.org",
		PaymentDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.RequireFromString("20.00"),
		DisplayName: "Bob",
	}

	msg := render("donations@example.org", receipt)
	assert.NotContains(t, msg, "credited to your account")
}
