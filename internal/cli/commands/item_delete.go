package commands

import (
	"context"
	"fmt"

	"ItemKeeper/internal/cli/model"
	"ItemKeeper/internal/config"
)

type itemDeleteCmd struct{}

func (itemDeleteCmd) Name() string        { return "item-delete" }
func (itemDeleteCmd) Description() string { return "Delete an item" }
func (itemDeleteCmd) Usage() string       { return "item-delete <id>" }

func (itemDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, ok := parseID(args[0])
	if !ok {
		return ErrUsage
	}
	if err := newClient(cfg).DeleteItem(ctx, model.Item{ID: id}); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted: %d\n", id)
	return nil
}

func init() { RegisterCmd(itemDeleteCmd{}) }
