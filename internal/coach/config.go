package coach

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/scoring"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/trend"
)

// Config holds every tunable of the coaching pipeline. The zero value is
// not usable; start from DefaultConfig or ConfigFromEnv.
type Config struct {
	Scoring scoring.Config
	Trend   trend.Config

	// Escalation ladder thresholds.
	WatchingScore   float64 // NORMAL -> WATCHING above this
	WarningScore    float64 // WATCHING -> WARNING above this
	ProtectiveScore float64 // WARNING -> PROTECTIVE above this

	// De-escalation. A step down requires HysteresisWindow consecutive
	// observations below the relevant threshold; escalation never waits.
	RecoveryEntryScore float64 // PROTECTIVE -> RECOVERY below this, sustained
	RecoveryExitScore  float64 // RECOVERY -> NORMAL below this
	HysteresisWindow   int

	// AlignmentHighScore is the burnout level at which behavior counts
	// as "bad" for the alignment cross-tabulation.
	AlignmentHighScore float64

	// Intervention escalators.
	WarningActiveScore    float64 // within WARNING, ACTIVE above this
	ProtectiveUrgentScore float64 // within PROTECTIVE, URGENT above this
	FailureStreakEscalate int     // consecutive failures that bump one level

	// Per-level message cooldowns. URGENT has none.
	MonitorCooldown time.Duration
	GentleCooldown  time.Duration
	ActiveCooldown  time.Duration

	// Silent-disengagement heuristic.
	DisengageSilence       time.Duration // message silence before the check applies
	DisengageFailures      int           // failures since last message, when a message exists
	DisengageFailuresMuted int           // failures threshold when the user never messaged
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		Scoring: scoring.DefaultConfig(),
		Trend:   trend.DefaultConfig(),

		WatchingScore:   0.30,
		WarningScore:    0.50,
		ProtectiveScore: 0.65,

		RecoveryEntryScore: 0.40,
		RecoveryExitScore:  0.25,
		HysteresisWindow:   3,

		AlignmentHighScore: 0.5,

		WarningActiveScore:    0.6,
		ProtectiveUrgentScore: 0.8,
		FailureStreakEscalate: 3,

		MonitorCooldown: 10 * time.Minute,
		GentleCooldown:  5 * time.Minute,
		ActiveCooldown:  2 * time.Minute,

		DisengageSilence:       10 * time.Minute,
		DisengageFailures:      3,
		DisengageFailuresMuted: 5,
	}
}

// ConfigFromEnv builds a Config from COACH_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	envFloat("COACH_DECAY_RATE", &cfg.Scoring.DecayRate)
	envFloat("COACH_SMOOTHING_ALPHA", &cfg.Scoring.Alpha)
	envInt("COACH_SIGNAL_HISTORY", &cfg.Scoring.HistoryLimit)
	envInt("COACH_SCORE_HISTORY", &cfg.Scoring.ScoreHistoryLimit)

	envInt("COACH_TREND_WINDOW", &cfg.Trend.Window)

	envFloat("COACH_WATCHING_SCORE", &cfg.WatchingScore)
	envFloat("COACH_WARNING_SCORE", &cfg.WarningScore)
	envFloat("COACH_PROTECTIVE_SCORE", &cfg.ProtectiveScore)
	envFloat("COACH_RECOVERY_ENTRY_SCORE", &cfg.RecoveryEntryScore)
	envFloat("COACH_RECOVERY_EXIT_SCORE", &cfg.RecoveryExitScore)
	envInt("COACH_HYSTERESIS_WINDOW", &cfg.HysteresisWindow)

	envFloat("COACH_ALIGNMENT_HIGH_SCORE", &cfg.AlignmentHighScore)

	envDuration("COACH_MONITOR_COOLDOWN", &cfg.MonitorCooldown)
	envDuration("COACH_GENTLE_COOLDOWN", &cfg.GentleCooldown)
	envDuration("COACH_ACTIVE_COOLDOWN", &cfg.ActiveCooldown)

	envDuration("COACH_DISENGAGE_SILENCE", &cfg.DisengageSilence)

	return cfg
}

// Validate checks threshold ordering and window sanity.
func (c Config) Validate() error {
	if !(c.WatchingScore < c.WarningScore && c.WarningScore < c.ProtectiveScore) {
		return fmt.Errorf("escalation thresholds must be strictly increasing: %.2f, %.2f, %.2f",
			c.WatchingScore, c.WarningScore, c.ProtectiveScore)
	}
	if c.RecoveryExitScore >= c.RecoveryEntryScore {
		return fmt.Errorf("recovery exit score %.2f must be below entry score %.2f",
			c.RecoveryExitScore, c.RecoveryEntryScore)
	}
	if c.HysteresisWindow < 1 {
		return fmt.Errorf("hysteresis window must be at least 1, got %d", c.HysteresisWindow)
	}
	if c.Scoring.Alpha <= 0 || c.Scoring.Alpha > 1 {
		return fmt.Errorf("smoothing alpha must be in (0,1], got %.2f", c.Scoring.Alpha)
	}
	if c.Scoring.DecayRate <= 0 {
		return fmt.Errorf("decay rate must be positive, got %.4f", c.Scoring.DecayRate)
	}
	return nil
}

func envFloat(key string, dst *float64) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envDuration(key string, dst *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
