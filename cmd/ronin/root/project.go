package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ronin/internal/store"
	"ronin/internal/ui"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage portfolio projects",
	}
	cmd.AddCommand(
		newProjectAddCmd(),
		newProjectListCmd(),
		newProjectEditCmd(),
		newProjectRmCmd(),
	)
	return cmd
}

func newProjectAddCmd() *cobra.Command {
	var description string
	var tech []string
	var github, live, imageURL string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a project",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()
			if err := requireRonin(a); err != nil {
				return err
			}

			p := a.store.AddProject(store.ProjectInput{
				Title:       args[0],
				Description: description,
				Tech:        tech,
				GitHub:      github,
				Live:        live,
				ImageURL:    imageURL,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconBlade+" Forged"), p.Title, ui.Muted.Render("("+p.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "d", "", "Project description")
	cmd.Flags().StringSliceVarP(&tech, "tech", "t", nil, "Tech stack (repeat or comma-separate)")
	cmd.Flags().StringVar(&github, "github", "", "GitHub URL")
	cmd.Flags().StringVar(&live, "live", "", "Live URL")
	cmd.Flags().StringVar(&imageURL, "image", "", "Image URL")

	return cmd
}

func newProjectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			projects := a.store.Projects()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconScroll, "Projects"))
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(none yet)"))
				return nil
			}
			for _, p := range projects {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", ui.Key.Render(p.Title), ui.Muted.Render("("+p.ID+")"))
				if p.Description != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", p.Description)
				}
				if len(p.Tech) > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", ui.Dim.Render("tech:"), strings.Join(p.Tech, ", "))
				}
			}
			return nil
		},
	}
}

func newProjectEditCmd() *cobra.Command {
	var title, description string
	var tech []string
	var github, live, imageURL string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a project",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()
			if err := requireRonin(a); err != nil {
				return err
			}

			patch := store.ProjectPatch{Tech: tech}
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("desc") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("github") {
				patch.GitHub = &github
			}
			if cmd.Flags().Changed("live") {
				patch.Live = &live
			}
			if cmd.Flags().Changed("image") {
				patch.ImageURL = &imageURL
			}

			if a.store.UpdateProject(args[0], patch) == store.NotFound {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("no project with that id — nothing changed"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "New description")
	cmd.Flags().StringSliceVarP(&tech, "tech", "t", nil, "Replace tech stack")
	cmd.Flags().StringVar(&github, "github", "", "New GitHub URL")
	cmd.Flags().StringVar(&live, "live", "", "New live URL")
	cmd.Flags().StringVar(&imageURL, "image", "", "New image URL")

	return cmd
}

func newProjectRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a project",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()
			if err := requireRonin(a); err != nil {
				return err
			}

			if a.store.DeleteProject(args[0]) == store.NotFound {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("no project with that id — nothing changed"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Removed"))
			return nil
		},
	}
}
