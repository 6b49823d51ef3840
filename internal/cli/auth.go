package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/gearguard-backend/pkg/client"
)

func registerCmd(e *env) *cobra.Command {
	var email, name, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pw, err := e.passwordOrPrompt(password, true)
			if err != nil {
				return err
			}
			sess, err := e.client.Register(cmd.Context(), email, pw, name)
			if err != nil {
				return err
			}
			return e.signedIn(sess, "Registered")
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func loginCmd(e *env) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pw, err := e.passwordOrPrompt(password, false)
			if err != nil {
				return err
			}
			sess, err := e.client.Login(cmd.Context(), email, pw)
			if err != nil {
				return err
			}
			return e.signedIn(sess, "Signed in")
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (e *env) signedIn(sess *client.Session, verb string) error {
	if err := e.store.Save(sess); err != nil {
		return err
	}
	e.printf("%s as %s <%s>\n", verb, sess.User.Name, sess.User.Email)
	return nil
}

func logoutCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			e.client.Logout()
			if err := e.store.Clear(); err != nil {
				return err
			}
			e.printf("Signed out\n")
			return nil
		},
	}
}

func whoamiCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := e.requireSession(); err != nil {
				return err
			}
			var user *client.User
			err := e.call(cmd.Context(), func(ctx context.Context) error {
				var err error
				user, err = e.client.Me(ctx)
				return err
			})
			if err != nil {
				return err
			}
			e.printf("%s <%s>\n", user.Name, user.Email)
			e.printf("id:      %s\n", user.ID)
			e.printf("since:   %s\n", formatDate(&user.CreatedAt))
			e.printf("session: %s\n", e.store.Path())
			return nil
		},
	}
}
