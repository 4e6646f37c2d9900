package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/mango-services/loyalty-auth/internal/client/client"
	"github.com/mango-services/loyalty-auth/internal/client/config"
	"github.com/mango-services/loyalty-auth/internal/client/session"
	pb "github.com/mango-services/loyalty-auth/internal/proto"
)

type sessionStore interface {
	Load() (*session.Session, error)
	Save(*session.Session) error
	Clear() error
}

type App struct {
	config  *config.Config
	api     client.Client
	store   sessionStore
	session *session.Session
	reader  *bufio.Reader
	out     io.Writer
	http    *http.Client
}

func NewApp(c *config.Config) (*App, error) {

	store, err := session.NewFileStore(c.SessionDir)
	if err != nil {
		return nil, err
	}

	api, err := client.NewGRPCClient(c.AuthEndpointAddr, c.RewardEndpointAddr)
	if err != nil {
		return nil, err
	}

	a := newApp(c, api, store, os.Stdin, os.Stdout)
	api.OnRefresh(a.saveTokens)
	return a, nil
}

func newApp(c *config.Config, api client.Client, store sessionStore, in io.Reader, out io.Writer) *App {
	a := &App{config: c, api: api, store: store, reader: bufio.NewReader(in), out: out, http: http.DefaultClient}

	sess, err := store.Load()
	switch {
	case err == nil:
		a.session = sess
		api.SetTokens(sess.AccessToken, sess.RefreshToken)
	case !errors.Is(err, session.ErrNoSession):
		log.Printf("ignoring saved session: %v", err)
	}
	return a
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) getStatus() string {
	if a.session == nil {
		return "guest"
	}
	return a.session.Email
}

// saveTokens persists a transparently refreshed token pair.
func (a *App) saveTokens(resp *pb.AuthResponse) {
	if a.session == nil {
		return
	}
	a.session.AccessToken, a.session.RefreshToken = resp.AccessToken, resp.RefreshToken
	if err := a.store.Save(a.session); err != nil {
		log.Printf("error saving session: %v", err)
	}
}

func (a *App) startSession(resp *pb.AuthResponse) error {
	a.session = &session.Session{
		UserID:       resp.UserId,
		Email:        resp.Email,
		Name:         resp.Name,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	return a.store.Save(a.session)
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	log.Println("Welcome to the loyalty CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}
