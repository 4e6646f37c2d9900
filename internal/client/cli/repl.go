package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to. The real App
// type satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
	Health(ctx context.Context) error
	Balance(ctx context.Context, args []string) error
	Earn(ctx context.Context, args []string) error
	Redeem(ctx context.Context, args []string) error
	Ledger(ctx context.Context, args []string) error
	ListRewards(ctx context.Context) error
	AddReward(ctx context.Context) error
	DeleteReward(ctx context.Context, args []string) error
	UploadImage(ctx context.Context, args []string) error
	ImageURL(ctx context.Context, args []string) error
}

// runREPL reads one command per line from scanner and dispatches it to a.
// The loop exits on EOF or on "exit"/"quit".
//
//	Always:
//	  help, health, rewards, exit | quit
//	Guest:
//	  register, login
//	Signed in:
//	  balance [user], earn <points> [order], redeem <points> [reward],
//	  ledger [user], addreward, delreward <id>, upload <reward> <file>,
//	  imageurl <key>, refresh, logout
//
// Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("loyalty (%s)> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: balance, earn, redeem, ledger, rewards, addreward, delreward, upload, imageurl, health, refresh, logout, exit")
			} else {
				printlnFn("Available commands: register, login, rewards, health, exit")
			}
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "refresh":
			err = a.Refresh(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "health":
			err = a.Health(ctx)
		case "balance":
			err = a.Balance(ctx, args)
		case "earn":
			err = a.Earn(ctx, args)
		case "redeem":
			err = a.Redeem(ctx, args)
		case "ledger":
			err = a.Ledger(ctx, args)
		case "rewards":
			err = a.ListRewards(ctx)
		case "addreward":
			err = a.AddReward(ctx)
		case "delreward":
			err = a.DeleteReward(ctx, args)
		case "upload":
			err = a.UploadImage(ctx, args)
		case "imageurl":
			err = a.ImageURL(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("error:", err)
		}
	}
}
