package config

import "testing"

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "reception",
		DBPassword: "secret",
		DBName:     "hotel",
		DBSSLMode:  "require",
	}
	want := "host=db.internal port=5433 user=reception password=secret dbname=hotel sslmode=require"
	if got := cfg.GetDBConnString(); got != want {
		t.Errorf("GetDBConnString() = %q, want %q", got, want)
	}
}

func TestEmailConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"complete", Config{SMTPHost: "smtp.example.com", SMTPFromEmail: "no-reply@example.com"}, true},
		{"missing host", Config{SMTPFromEmail: "no-reply@example.com"}, false},
		{"missing from", Config{SMTPHost: "smtp.example.com"}, false},
		{"empty", Config{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.EmailConfigured(); got != tt.want {
				t.Errorf("EmailConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}
