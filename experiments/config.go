package experiments

import (
	"errors"
	"fmt"
	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/meta"
	"os"

	"gopkg.in/yaml.v2"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

// Config describes one experiment: which agents exist and which pairs of them
// play each other. Matchups list [white agent id, black agent id].
type Config struct {
	Name     string                `yaml:"name"`
	Output   string                `yaml:"output"`
	Games    int                   `yaml:"games"` // Per matchup
	Seed     uint64                `yaml:"seed"`
	Pawns    int                   `yaml:"pawns"` // Per side in start positions
	MaxTurns int                   `yaml:"max_turns"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	Matchups [][]int               `yaml:"matchups"`
}

func DefaultConfig() Config {
	return Config{
		Name:     "evaluators",
		Output:   "experiments",
		Games:    10,
		Seed:     1,
		Pawns:    meta.PAWNS,
		MaxTurns: meta.MAX_TURNS,
		Agents: []metrics.AgentConfig{
			{ID: 1, Evaluate: "basic", Depth: meta.DEPTH},
			{ID: 2, Evaluate: "improved", Depth: meta.DEPTH},
		},
		Matchups: [][]int{{1, 2}, {2, 1}},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read experiment config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive", ErrInvalidConfig)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("%w: max_turns must be positive", ErrInvalidConfig)
	}

	ids := make(map[int]bool, len(c.Agents))
	for _, agent := range c.Agents {
		if ids[agent.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, agent.ID)
		}
		ids[agent.ID] = true
		if agent.Depth < 1 {
			return fmt.Errorf("%w: agent %d needs a depth of at least 1", ErrInvalidConfig, agent.ID)
		}
		if _, err := game.LookupEvaluator(agent.Evaluate); err != nil {
			return fmt.Errorf("%w: agent %d: %v", ErrInvalidConfig, agent.ID, err)
		}
	}

	if len(c.Matchups) == 0 {
		return fmt.Errorf("%w: no matchups", ErrInvalidConfig)
	}
	for _, matchup := range c.Matchups {
		if len(matchup) != 2 {
			return fmt.Errorf("%w: matchup %v must name a white and a black agent", ErrInvalidConfig, matchup)
		}
		for _, id := range matchup {
			if !ids[id] {
				return fmt.Errorf("%w: matchup references unknown agent %d", ErrInvalidConfig, id)
			}
		}
	}
	return nil
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent
		}
	}
	panic(fmt.Sprintf("unknown agent %d", id))
}
