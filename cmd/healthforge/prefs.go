package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/mrsinham/healthforge/internal/prefs"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Show or change the color theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(prefs.ThemeDark), string(prefs.ThemeLight), "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *prefs.Store) error {
			var (
				theme prefs.Theme
				err   error
			)
			switch {
			case len(args) == 0:
				theme, err = store.Theme()
			case args[0] == "toggle":
				theme, err = store.ToggleTheme()
			default:
				theme, err = prefs.ParseTheme(args[0])
				if err == nil {
					err = store.SetTheme(theme)
				}
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme)
			return nil
		})
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Remember who is taking the assessment",
	Long: `Stores a name and email locally so the wizard can greet you.
Nothing leaves this machine.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		email, _ := cmd.Flags().GetString("email")
		name, _ := cmd.Flags().GetString("name")
		return withStore(func(store *prefs.Store) error {
			user, err := store.SignIn(email, name)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), user.Greeting())
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the current user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStore(func(store *prefs.Store) error {
			if err := store.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStore(func(store *prefs.Store) error {
			user, ok, err := store.CurrentUser()
			if err != nil {
				return eris.Wrap(err, "whoami")
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.Name, user.Email)
			return nil
		})
	},
}

func init() {
	loginCmd.Flags().String("email", "", "email address (required)")
	loginCmd.Flags().String("name", "", "display name (default \""+prefs.DefaultUserName+"\")")
	_ = loginCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(themeCmd, loginCmd, logoutCmd, whoamiCmd)
}
