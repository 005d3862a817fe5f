package commands

import (
	"context"
	"fmt"

	"ItemKeeper/internal/cli/api"
	"ItemKeeper/internal/config"
)

type itemsCmd struct{}

func (itemsCmd) Name() string        { return "items" }
func (itemsCmd) Description() string { return "List all items" }
func (itemsCmd) Usage() string       { return "items" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	list, err := newClient(cfg).LoadItems(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No items")
		return nil
	}
	for _, it := range list {
		fmt.Fprintf(Out, "- %d  %s", it.ID, it.Name)
		if it.Description != "" {
			fmt.Fprintf(Out, "  (%s)", it.Description)
		}
		fmt.Fprintln(Out)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
	return nil
}

func newClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.ServerURL, cfg.RequestTimeout)
}

func init() { RegisterCmd(itemsCmd{}) }
