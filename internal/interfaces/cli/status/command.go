package status

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"repoaccess/internal/application/accesstype"
	"repoaccess/internal/domain/access"
	vo "repoaccess/internal/domain/access/valueobjects"
	"repoaccess/internal/interfaces/cli/bootstrap"
	"repoaccess/internal/interfaces/cli/fixture"
	"repoaccess/internal/shared/errors"
)

type statusOptions struct {
	fixture string
	object  string
	now     string
	apply   bool
}

func NewCommand() *cobra.Command {
	o := &statusOptions{}
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the access status of an item or bitstream",
		Long:  `Evaluate the resource policies of an object from a repository fixture and print its access status, embargo date and, for items, the status aggregated over all files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd)
		},
	}

	cmd.Flags().StringVarP(&o.fixture, "fixture", "f", "", "Path to the repository fixture (required)")
	cmd.Flags().StringVarP(&o.object, "object", "o", "", "Item or bitstream ID (required)")
	cmd.Flags().StringVar(&o.now, "now", "", "Evaluation instant, RFC 3339 or YYYY-MM-DD (default: current time)")
	cmd.Flags().BoolVar(&o.apply, "apply", false, "Write the refreshed access type into the item metadata and print it")
	cmd.MarkFlagRequired("fixture")
	cmd.MarkFlagRequired("object")

	return cmd
}

func (o *statusOptions) run(cmd *cobra.Command) error {
	now, err := bootstrap.ParseNow(o.now)
	if err != nil {
		return err
	}

	env, err := bootstrap.Init(bootstrap.ConfigPath(cmd))
	if err != nil {
		return err
	}

	repo, err := fixture.Load(o.fixture)
	if err != nil {
		return err
	}

	target := repo.Object(o.object)
	if target == nil {
		return errors.NewNotFoundError("object not found", o.object)
	}

	env.Logger.Debugw("evaluating access status", "object", o.object, "now", now)
	return printStatus(cmd.OutOrStdout(), env.Engine, env.Refresher(), target, now, o.apply)
}

func printStatus(w io.Writer, engine *access.Engine, refresher *accesstype.Refresher, target access.Target, now time.Time, apply bool) error {
	status := engine.StatusForObject(target, now)

	fmt.Fprintf(w, "Object\t%s (%s)\n", color.BlueString(target.ID()), target.Kind())
	fmt.Fprintf(w, "Status\t%s\n", colorize(status))

	if embargo := engine.EmbargoDate(target, now); embargo != nil {
		fmt.Fprintf(w, "Embargo\t%s\n", embargo.Format(time.DateOnly))
	}
	if master := engine.MasterPolicy(target, now); master != nil && master.StartDate() != nil {
		fmt.Fprintf(w, "Until\t%s\n", master.StartDate().Format(time.DateOnly))
	}

	item, ok := target.(*access.Item)
	if !ok {
		return nil
	}

	if global, ok := engine.GlobalStatusForItem(item); ok {
		fmt.Fprintf(w, "Global\t%s\n", colorize(global))
		fmt.Fprintf(w, "Types\t%s\n", strings.Join(engine.AccessTypes(item), ", "))
	}

	update := refresher.Refresh(item, now)
	if !apply {
		if update.Action == accesstype.ActionSet {
			fmt.Fprintf(w, "Metadata\t%s should be %s\n", refresher.MetadataField(), colorize(update.Value))
		}
		return nil
	}

	refresher.Apply(item, update)
	value, _ := item.MetadataValue(refresher.MetadataField())
	fmt.Fprintf(w, "Metadata\t%s = %s\n", refresher.MetadataField(), colorize(vo.AccessStatus(value)))
	return nil
}

func colorize(status vo.AccessStatus) string {
	switch status {
	case vo.StatusOpenAccess:
		return color.GreenString(status.String())
	case vo.StatusEmbargo:
		return color.YellowString(status.String())
	case vo.StatusMixed:
		return color.MagentaString(status.String())
	case vo.StatusUnknown:
		return color.New(color.Faint).Sprint(status.String())
	default:
		return color.RedString(status.String())
	}
}
