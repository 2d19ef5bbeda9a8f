package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ayasaad.dev/internal/content"
	"ayasaad.dev/internal/handlers"
	"ayasaad.dev/internal/models"
	"ayasaad.dev/internal/navigation"
	"ayasaad.dev/internal/services"
)

func newRenderCmd(a *app) *cobra.Command {
	var page string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write one page's mounted document to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := models.ParsePage(page)
			if !ok {
				return fmt.Errorf("unknown page %q", page)
			}

			shell, err := a.shell()
			if err != nil {
				return err
			}
			root, err := a.mount(shell)
			if err != nil {
				return err
			}

			vp := &navigation.Viewport{}
			navigation.NewSwitcher(vp).Navigate(p)

			site := handlers.NewSite(root,
				services.NewProjectService(content.Projects()),
				services.NewSkillService(content.Skills()),
				a.cfg.Profile, a.cfg.Seed)
			return site.Render(cmd.OutOrStdout(), p, vp.Title)
		},
	}
	cmd.Flags().StringVar(&page, "page", string(models.PageHome), "page to render")
	return cmd
}
