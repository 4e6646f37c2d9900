package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mango-services/loyalty-auth/internal/client/client"
	"github.com/mango-services/loyalty-auth/internal/common"
	"github.com/mango-services/loyalty-auth/internal/netx"
	pb "github.com/mango-services/loyalty-auth/internal/proto"
)

// Prompt indirections, replaced in tests.
var (
	getSimpleText = GetSimpleText
	getEmail      = GetEmail
	getMultiline  = GetMultiline
	getPassword   = GetPassword
)

var (
	errNotLoggedIn = errors.New("not logged in, use 'login' first")
	errUsage       = errors.New("wrong arguments, see 'help'")
)

func (a *App) requireSession() error {
	if a.session == nil {
		return errNotLoggedIn
	}
	return nil
}

// userArg returns args[0] when given, else the signed-in user's ID.
func (a *App) userArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.session.UserID
}

func parsePoints(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, errUsage
	}
	points, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("points: %w", err)
	}
	return points, nil
}

func optionalArg(args []string, i int) *string {
	if len(args) > i {
		return &args[i]
	}
	return nil
}

// Register prompts for email, password, name and phone, creates the account
// and signs in with the returned tokens.
func (a *App) Register(ctx context.Context) error {
	email, err := getEmail(a.reader, a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone number (optional)", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.api.Register(ctx, email, password, name, phone)
	if err != nil {
		return err
	}
	if err := a.startSession(resp); err != nil {
		return err
	}

	printlnFn("Registered, user id:", resp.UserId)
	return nil
}

// Login prompts for credentials and stores the session on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getEmail(a.reader, a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := a.startSession(resp); err != nil {
		return err
	}

	printlnFn("Login successful, welcome", resp.Name)
	return nil
}

// Refresh rotates the token pair explicitly.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.api.Refresh(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			printlnFn("Session expired, please log in again")
		}
		return err
	}
	a.saveTokens(resp)

	printlnFn("Tokens refreshed")
	return nil
}

// Logout forgets the local session. Tokens are not revoked server-side.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Clear(); err != nil {
		return err
	}
	a.session = nil
	a.api.SetTokens("", "")
	return nil
}

func (a *App) Health(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	auth, rewards, err := a.api.Health(ctx)
	if auth != nil {
		printlnFn(auth.Service+":", auth.Status)
	}
	if rewards != nil {
		printlnFn(rewards.Service+":", rewards.Status)
	}
	return err
}

func (a *App) printUserReward(ur *pb.UserReward) {
	printlnFn(fmt.Sprintf("User %s: available %d, total %d, lifetime %d",
		ur.UserId, ur.AvailablePoints, ur.TotalPoints, ur.LifetimePoints))
	for _, t := range ur.Transactions {
		ref := ""
		if t.ReferenceId != nil {
			ref = " ref=" + *t.ReferenceId
		}
		printlnFn(fmt.Sprintf("  %s %-8s %+d %s%s",
			t.CreatedAt.AsTime().Format("2006-01-02 15:04"), t.Type, t.Points, t.Description, ref))
	}
}

func (a *App) Balance(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	ur, err := a.api.GetUserReward(ctx, a.userArg(args))
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			printlnFn("No points yet")
			return nil
		}
		return err
	}

	a.printUserReward(ur)
	return nil
}

// Earn credits points to the signed-in user: earn <points> [orderId].
func (a *App) Earn(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	points, err := parsePoints(args)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	ur, err := a.api.EarnPoints(ctx, &pb.EarnPointsRequest{
		UserId:      a.session.UserID,
		Points:      points,
		Description: description,
		OrderId:     optionalArg(args, 1),
	})
	if err != nil {
		return err
	}

	a.printUserReward(ur)
	return nil
}

// Redeem spends points of the signed-in user: redeem <points> [rewardId].
func (a *App) Redeem(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	points, err := parsePoints(args)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	ur, err := a.api.RedeemPoints(ctx, &pb.RedeemPointsRequest{
		UserId:      a.session.UserID,
		Points:      points,
		Description: description,
		RewardId:    optionalArg(args, 1),
	})
	if err != nil {
		if errors.Is(err, client.ErrNotEligible) {
			printlnFn("Not enough points")
			return nil
		}
		return err
	}

	a.printUserReward(ur)
	return nil
}

func (a *App) Ledger(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	c, err := a.api.CheckLedger(ctx, a.userArg(args))
	if err != nil {
		return err
	}

	state := "consistent"
	if !c.Consistent {
		state = "DRIFT"
	}
	printlnFn(fmt.Sprintf("%s: stored %d/%d/%d, computed %d/%d/%d (total/available/lifetime)",
		state, c.StoredTotal, c.StoredAvailable, c.StoredLifetime,
		c.ComputedTotal, c.ComputedAvailable, c.ComputedLifetime))
	return nil
}

func (a *App) ListRewards(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	list, err := a.api.ListRewards(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		printlnFn("No rewards available")
		return nil
	}
	for _, r := range list {
		printlnFn(fmt.Sprintf("%s  %-24s %6d pts  %s", r.Id, r.Name, r.PointsRequired, r.Description))
	}
	return nil
}

func (a *App) AddReward(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter reward name", a.out)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Enter description", a.out)
	if err != nil {
		return err
	}
	pointsText, err := getSimpleText(a.reader, "Enter points required", a.out)
	if err != nil {
		return err
	}
	points, err := parsePoints([]string{pointsText})
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	r, err := a.api.CreateReward(ctx, &pb.CreateRewardRequest{Name: name, Description: description, PointsRequired: points})
	if err != nil {
		return err
	}

	printlnFn("Created reward", r.Id)
	return nil
}

func (a *App) DeleteReward(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if len(args) != 1 {
		return errUsage
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	deleted, err := a.api.DeleteReward(ctx, args[0])
	if err != nil {
		return err
	}
	if !deleted {
		printlnFn("No such reward")
		return nil
	}
	printlnFn("Deleted")
	return nil
}

// UploadImage sends a local file to object storage for a reward:
// upload <rewardId> <path>.
func (a *App) UploadImage(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if len(args) != 2 {
		return errUsage
	}
	rewardID, path := args[0], args[1]

	// read fully so the PUT carries a Content-Length, which S3 requires
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	key, url, err := a.api.PresignImageUpload(ctx, rewardID)
	if err != nil {
		return err
	}

	if err := netx.UploadToPresignedURL(ctx, a.http, url, mime.TypeByExtension(filepath.Ext(path)), bytes.NewReader(data)); err != nil {
		return err
	}

	printlnFn("Uploaded, image key:", key)
	return nil
}

func (a *App) ImageURL(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if len(args) != 1 {
		return errUsage
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	url, err := a.api.PresignImageDownload(ctx, args[0])
	if err != nil {
		return err
	}
	printlnFn(url)
	return nil
}
