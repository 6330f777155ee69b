package main

import (
	"fmt"

	"planetary-api/internal/cache"
	"planetary-api/internal/config"
	"planetary-api/internal/database"
	"planetary-api/internal/service"
	"planetary-api/internal/store"

	"github.com/spf13/cobra"
)

var (
	rollbackFn = database.RollbackAll
	seedFn     = store.Seed
)

// newRootCommand 建立 CLI；未指定子命令時等同 serve
func newRootCommand() *cobra.Command {
	var configFile string

	load := func() (*config.Config, error) {
		return loadConfig(configFile)
	}

	root := &cobra.Command{
		Use:   "planetary",
		Short: "Planetary API server",
		Long: `Planetary API serves a catalog of planets and a user
registration/login flow with email password retrieval.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json or toml)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  root.RunE,
	})
	root.AddCommand(newDBCommand(load))
	return root
}

// newDBCommand 對應資料庫維護指令：create、drop、seed
func newDBCommand(load func() (*config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the database schema and seed data",
	}

	withDB := func(fn func(cmd *cobra.Command, cfg *config.Config, db *database.Conn) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			db, err := openDB(cmd.Context(), cfg.DatabaseDriver, cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("DB 連線失敗: %w", err)
			}
			defer db.Close()
			return fn(cmd, cfg, db)
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Apply all migrations",
		Args:  cobra.NoArgs,
		RunE: withDB(func(cmd *cobra.Command, _ *config.Config, db *database.Conn) error {
			if err := runMigrationsFn(db); err != nil {
				return err
			}
			cmd.Println("Database created!")
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "drop",
		Short: "Roll back all migrations",
		Args:  cobra.NoArgs,
		RunE: withDB(func(cmd *cobra.Command, cfg *config.Config, db *database.Conn) error {
			if err := rollbackFn(db); err != nil {
				return err
			}
			bumpPlanetCache(cmd, cfg)
			cmd.Println("Database dropped!")
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Insert the sample planets and test user",
		Args:  cobra.NoArgs,
		RunE: withDB(func(cmd *cobra.Command, cfg *config.Config, db *database.Conn) error {
			user := store.SeedUser
			hash, err := service.HashPassword(store.SeedUserPassword)
			if err != nil {
				return err
			}
			user.PasswordHash = hash

			n, err := seedFn(cmd.Context(), db, user)
			if err != nil {
				return err
			}
			if n > 0 {
				bumpPlanetCache(cmd, cfg)
			}
			cmd.Printf("Database seeded! (%d rows)\n", n)
			return nil
		}),
	})
	return cmd
}

// bumpPlanetCache 讓伺服器端的行星快取失效；未設定 Redis 時略過
// 資料庫已變更，快取失敗只提示不回傳錯誤
func bumpPlanetCache(cmd *cobra.Command, cfg *config.Config) {
	if cfg.RedisAddr == "" {
		return
	}
	cch, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		cmd.PrintErrf("planet cache not invalidated: %v\n", err)
		return
	}
	defer cch.Close()
	if err := cache.BumpPlanets(cmd.Context(), cch); err != nil {
		cmd.PrintErrf("planet cache not invalidated: %v\n", err)
	}
}
