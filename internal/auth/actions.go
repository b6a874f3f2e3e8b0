package auth

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/summarizer/internal/app"
	"github.com/dtnitsch/summarizer/models"
	"github.com/dtnitsch/summarizer/pkg/terminal"
	"github.com/dtnitsch/summarizer/pkg/ui"
)

// Commands returns the signup and login commands.
func Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "signup",
			Usage: "create an account",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
				&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true},
				&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "prompted for when omitted"},
			},
			Action: SignupAction,
		},
		{
			Name:  "login",
			Usage: "log in to an existing account",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true},
				&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "prompted for when omitted"},
			},
			Action: LoginAction,
		},
	}
}

func SignupAction(c *cli.Context) error {
	return submit(c, models.PageSignup, func(s *ui.State) *ui.AuthForm { return &s.Signup })
}

func LoginAction(c *cli.Context) error {
	return submit(c, models.PageLogin, func(s *ui.State) *ui.AuthForm { return &s.Login })
}

// submit fills the form selected by pick from the flags and dispatches its
// submit event.
func submit(c *cli.Context, page models.Page, pick func(*ui.State) *ui.AuthForm) error {
	startTime := time.Now()

	a, err := app.New(c, page)
	if err != nil {
		return err
	}
	defer a.Close()
	defer a.Elapsed(c.Command.Name, startTime)

	password := c.String("password")
	if !c.IsSet("password") {
		password, err = terminal.PromptPassword(a.Err, "Password: ")
		if err != nil {
			return cli.Exit(err.Error(), app.ExitFailure)
		}
	}

	form := pick(a.State)
	form.Username.Value = c.String("username")
	form.Email.Value = c.String("email")
	form.Password.Value = password

	if err := a.Bus.Dispatch(c.Context, form.ID, ui.EventSubmit); err != nil {
		return err
	}
	return app.ResultExit(a.Auth.LastResult())
}
