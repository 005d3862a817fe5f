package commands

import (
	"context"
	"fmt"
	"strconv"

	"ItemKeeper/internal/cli/model"
	"ItemKeeper/internal/config"
)

type itemEditCmd struct{}

func (itemEditCmd) Name() string        { return "item-edit" }
func (itemEditCmd) Description() string { return "Replace name and description of an item" }
func (itemEditCmd) Usage() string       { return "item-edit <id> <name> <description>" }

func (itemEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 || args[1] == "" {
		return ErrUsage
	}
	id, ok := parseID(args[0])
	if !ok {
		return ErrUsage
	}
	updated, err := newClient(cfg).UpdateItem(ctx, model.Item{ID: id, Name: args[1], Description: args[2]})
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Updated:")
	printItem(updated)
	return nil
}

// parseID accepts positive decimal ids only; 0 is reserved for "not created yet".
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func init() { RegisterCmd(itemEditCmd{}) }
