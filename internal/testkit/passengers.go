// Package testkit generates deterministic synthetic tables for demos and tests.
package testkit

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
)

// PassengerConfig configures the passenger table generator
type PassengerConfig struct {
	Rows        int     `json:"rows"`
	MissingRate float64 `json:"missing_rate"` // share of Age cells left empty
	Seed        int64   `json:"seed"`
}

// DefaultPassengerConfig returns the defaults used by the sample command
func DefaultPassengerConfig() PassengerConfig {
	return PassengerConfig{
		Rows:        891,
		MissingRate: 0.2,
		Seed:        42,
	}
}

// PassengerHeader is the column order of generated tables
var PassengerHeader = []string{"PassengerId", "Survived", "Pclass", "Sex", "Age", "SibSp", "Parch", "Fare", "Embarked"}

// PassengerGenerator produces a passenger-manifest style table with mixed column types
type PassengerGenerator struct {
	config PassengerConfig
	rng    *rand.Rand
}

// NewPassengerGenerator creates a new generator; equal seeds give equal tables
func NewPassengerGenerator(config PassengerConfig) *PassengerGenerator {
	return &PassengerGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Records returns the header row followed by config.Rows data rows
func (g *PassengerGenerator) Records() [][]string {
	records := make([][]string, 0, g.config.Rows+1)
	records = append(records, append([]string(nil), PassengerHeader...))

	for i := 0; i < g.config.Rows; i++ {
		records = append(records, g.passenger(i+1))
	}
	return records
}

func (g *PassengerGenerator) passenger(id int) []string {
	class := g.pick([]float64{0.24, 0.21, 0.55}) + 1
	female := g.rng.Float64() < 0.35

	// Survival odds depend on class and sex so the correlation view has signal
	odds := 0.15 + 0.2*float64(3-class)
	if female {
		odds += 0.45
	}
	survived := g.rng.Float64() < math.Min(odds, 0.95)

	age := ""
	if g.rng.Float64() >= g.config.MissingRate {
		a := math.Max(0.42, g.rng.NormFloat64()*14+29.7)
		age = strconv.FormatFloat(math.Round(a), 'f', -1, 64)
	}

	fare := math.Exp(g.rng.NormFloat64()*0.6 + 4.2 - 0.7*float64(class))
	fare = math.Round(fare*10000) / 10000

	sex := "male"
	if female {
		sex = "female"
	}

	return []string{
		strconv.Itoa(id),
		boolDigit(survived),
		strconv.Itoa(class),
		sex,
		age,
		strconv.Itoa(g.pick([]float64{0.68, 0.23, 0.05, 0.04})),
		strconv.Itoa(g.pick([]float64{0.76, 0.13, 0.09, 0.02})),
		strconv.FormatFloat(fare, 'f', -1, 64),
		[]string{"S", "C", "Q"}[g.pick([]float64{0.72, 0.19, 0.09})],
	}
}

// pick draws an index from the given weights, which should sum to 1
func (g *PassengerGenerator) pick(weights []float64) int {
	r := g.rng.Float64()
	for i, w := range weights {
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// WriteCSV writes the generated table to path
func (g *PassengerGenerator) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(g.Records()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
