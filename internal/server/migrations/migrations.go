// Package migrations embeds the goose SQL migrations of both databases.
// Auth schema lives under auth/, reward schema under rewards/.
package migrations

import "embed"

const (
	AuthDir    = "auth"
	RewardsDir = "rewards"
)

//go:embed auth/*.sql rewards/*.sql
var Migrations embed.FS

// VersionTable names the goose version table of a migration dir.
func VersionTable(dir string) string {
	return "goose_" + dir + "_version"
}
