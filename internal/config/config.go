package config

import (
	"os"
)

type Config struct {
	SyntheticPayee string
	InflowCategory string
	ReviewPrefix   string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults match the literals the source budgets use for the internal
	// payee and the inflow category.
	env := Config{
		SyntheticPayee: "Fake",
		InflowCategory: "Inflow: Ready to Assign",
		ReviewPrefix:   "",
	}

	envSyntheticPayee := os.Getenv("SNAPSHOT_SYNTHETIC_PAYEE")
	envInflowCategory := os.Getenv("SNAPSHOT_INFLOW_CATEGORY")
	envReviewPrefix := os.Getenv("SNAPSHOT_REVIEW_PREFIX")

	if len(envSyntheticPayee) != 0 {
		env.SyntheticPayee = envSyntheticPayee
	}

	if len(envInflowCategory) != 0 {
		env.InflowCategory = envInflowCategory
	}

	if len(envReviewPrefix) != 0 {
		env.ReviewPrefix = envReviewPrefix
	}

	return &env, nil
}
