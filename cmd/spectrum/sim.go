package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/full-spectrum/internal/config"
	"github.com/vovakirdan/full-spectrum/internal/core"
	"github.com/vovakirdan/full-spectrum/internal/game"
)

var simCmd = &cobra.Command{
	Use:   "sim <level> <script>",
	Short: "Replay a scripted action sequence against a level",
	Long: `Run a YAML action script against a level and report the outcome of every
action plus the final state hash. Useful as a headless regression surface
for the lock state machine.

Script format:

  actions:
    - op: interact
      x: 4
      y: 1
    - op: move
      dir: down
    - op: reset

Examples:
  spectrum sim levels/classic.yaml scripts/opening.yaml`,
	Args: cobra.ExactArgs(2),
	Run:  runSim,
}

// simScript is the YAML shape of an action script.
type simScript struct {
	Actions []simAction `yaml:"actions"`
}

type simAction struct {
	Op  string `yaml:"op"`            // interact, move, reset
	X   int    `yaml:"x,omitempty"`   // interact only
	Y   int    `yaml:"y,omitempty"`   // interact only
	Dir string `yaml:"dir,omitempty"` // move only
}

func runSim(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("could not load config", "error", err)
		os.Exit(1)
	}

	level, err := resolveLevel(args[0])
	if err != nil {
		logger.Error("could not load level", "ref", args[0], "error", err)
		os.Exit(1)
	}
	board, err := level.ToBoard()
	if err != nil {
		logger.Error("could not build board", "level", level.ID, "error", err)
		os.Exit(1)
	}

	script, err := loadScript(args[1])
	if err != nil {
		logger.Error("could not load script", "path", args[1], "error", err)
		os.Exit(1)
	}

	g, err := game.New(game.Config{
		EnergyMax: cfg.Rules.EnergyMax,
		LivesMax:  cfg.Rules.LivesMax,
	}, board)
	if err != nil {
		logger.Error("could not start session", "level", level.ID, "error", err)
		os.Exit(1)
	}

	for i, a := range script.Actions {
		res, err := applyAction(g, a)
		if err != nil {
			logger.Error("bad action", "index", i, "error", err)
			os.Exit(1)
		}
		logger.Info("action applied",
			"index", i,
			"op", a.Op,
			"outcome", res.Outcome,
			"mutated", res.Outcome.Mutated(),
			"locked", len(res.Locked),
			"life_lost", res.LifeLost,
			"energy", g.Energy(),
			"lives", g.Lives(),
		)
		if g.IsLost() {
			logger.Warn("session lost", "after_action", i)
			break
		}
	}

	light := g.Light()
	logger.Info("final state",
		"snapshot", fmt.Sprintf("%016x", g.Snapshot()),
		"direct", len(light.Direct),
		"scatter", len(light.Scatter),
		"energy", g.Energy(),
		"lives", g.Lives(),
	)
}

func loadScript(path string) (simScript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return simScript{}, err
	}
	var s simScript
	if err := yaml.Unmarshal(data, &s); err != nil {
		return simScript{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return s, nil
}

func applyAction(g *game.Game, a simAction) (game.ActionResult, error) {
	switch a.Op {
	case "interact":
		return g.Interact(core.C(a.X, a.Y)), nil
	case "move":
		d, ok := core.ParseDir(a.Dir)
		if !ok {
			return game.ActionResult{}, fmt.Errorf("unknown direction %q", a.Dir)
		}
		return g.MoveSelected(d), nil
	case "reset":
		return g.Reset(), nil
	default:
		return game.ActionResult{}, fmt.Errorf("unknown op %q", a.Op)
	}
}
