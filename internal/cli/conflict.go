package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/necomav/dayplan/internal/contract"
	"github.com/necomav/dayplan/internal/scheduler"
)

// chooseStrategy maps the --on-conflict flag, or an interactive selection,
// onto the engine's tagged strategy variant.
func chooseStrategy(app *App, onConflict string, explicitMove *scheduler.Interval) (contract.Strategy, error) {
	switch onConflict {
	case "replace":
		return contract.Strategy{Kind: contract.StrategyReplace}, nil
	case "move":
		return contract.Strategy{Kind: contract.StrategyMove, MoveTo: explicitMove}, nil
	case "shift":
		return contract.Strategy{Kind: contract.StrategyShift}, nil
	case "cancel":
		return contract.Strategy{Kind: contract.StrategyCancel}, nil
	case "":
	default:
		return contract.Strategy{}, fmt.Errorf("unknown conflict strategy %q", onConflict)
	}

	if app.IsInteractive == nil || !app.IsInteractive() {
		return contract.Strategy{}, fmt.Errorf("time conflict: pass --on-conflict=replace|move|shift|cancel")
	}

	var kind contract.StrategyKind
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[contract.StrategyKind]().
			Title("The requested time is taken. How should this be resolved?").
			Options(
				huh.NewOption("Replace the conflicting tasks", contract.StrategyReplace),
				huh.NewOption("Move my new task to the next free slot", contract.StrategyMove),
				huh.NewOption("Shift the conflicting tasks later", contract.StrategyShift),
				huh.NewOption("Cancel", contract.StrategyCancel),
			).
			Value(&kind),
	))
	if err := form.Run(); err != nil {
		return contract.Strategy{}, fmt.Errorf("reading strategy selection: %w", err)
	}
	return contract.Strategy{Kind: kind, MoveTo: explicitMove}, nil
}
