package commands

import (
	"context"
	"fmt"

	"ItemKeeper/internal/cli/model"
	"ItemKeeper/internal/config"
)

type itemAddCmd struct{}

func (itemAddCmd) Name() string        { return "item-add" }
func (itemAddCmd) Description() string { return "Create an item" }
func (itemAddCmd) Usage() string       { return "item-add <name> [<description>]" }

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 || args[0] == "" {
		return ErrUsage
	}
	it := model.Item{Name: args[0]}
	if len(args) == 2 {
		it.Description = args[1]
	}
	created, err := newClient(cfg).CreateItem(ctx, it)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	printItem(created)
	return nil
}

func printItem(it model.Item) {
	fmt.Fprintf(Out, "  id:          %d\n", it.ID)
	fmt.Fprintf(Out, "  name:        %s\n", it.Name)
	fmt.Fprintf(Out, "  description: %s\n", it.Description)
}

func init() { RegisterCmd(itemAddCmd{}) }
