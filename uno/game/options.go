package game

import (
	"fmt"
	"io"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/rng"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Variant     Variant
	TargetScore int
	HandSize    int
	// DetectionProbability is the chance that a missed last card declaration is noticed.
	DetectionProbability float64
	// MaxRounds ends the game without a winner once reached. Zero means no limit.
	MaxRounds int
	// MaxDecisionAttempts bounds how often a human is asked again after naming a card they do not hold.
	MaxDecisionAttempts int
	SessionID           string
	Rand                rng.Generator
	Logger              logrus.FieldLogger
	// NewDeck provides the deck of every round. A shuffled standard deck is used when nil.
	NewDeck func(round int, gen rng.Generator) *Deck
}

func DefaultOptions() Options {
	return Options{
		Variant:              VariantStandard,
		TargetScore:          consts.WinningScore,
		HandSize:             consts.StartingHandSize,
		DetectionProbability: consts.DefaultDetectionProbability,
		MaxDecisionAttempts:  consts.MaxPromptAttempts,
	}
}

func (o Options) validate() error {
	if _, err := ParseVariant(string(o.Variant)); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidOptions, err)
	}
	if o.TargetScore <= 0 || o.HandSize <= 0 || o.MaxRounds < 0 || o.MaxDecisionAttempts <= 0 {
		return ErrInvalidOptions
	}
	if o.DetectionProbability < 0 || o.DetectionProbability > 1 {
		return ErrInvalidOptions
	}
	return nil
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
