package utils

import "testing"

func TestConvertMinutesToDuration(t *testing.T) {
	convertRequest := func(minutes int64, want string) func(t *testing.T) {
		return func(t *testing.T) {
			got := ConvertMinutesToDuration(minutes)
			if got != want {
				t.Fatalf("expected %s, got %s", want, got)
			}
		}
	}

	t.Run("hours_and_minutes", convertRequest(125, "2h 5m"))
	t.Run("whole_hours", convertRequest(120, "2h"))
	t.Run("minutes_only", convertRequest(45, "45m"))
}

func TestConvertDurationToMinutes(t *testing.T) {
	if got := ConvertDurationToMinutes("2h 30m"); got != 150 {
		t.Fatalf("expected 150, got %d", got)
	}
}

func TestFormatAmount(t *testing.T) {
	formatRequest := func(currency string, amount float64, want string) func(t *testing.T) {
		return func(t *testing.T) {
			got := FormatAmount(currency, amount)
			if got != want {
				t.Fatalf("expected %s, got %s", want, got)
			}
		}
	}

	t.Run("usd_thousands", formatRequest("USD", 1234.5, "$1,234.50"))
	t.Run("eur_whole", formatRequest("EUR", 99, "€99.00"))
	t.Run("unknown_currency", formatRequest("AUD", 10, "AUD 10.00"))
	t.Run("negative", formatRequest("USD", -5.25, "-$5.25"))
}
