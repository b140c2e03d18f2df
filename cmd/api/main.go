package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"bookstore-api/internal/domains/user/model"
	"bookstore-api/internal/infrastructure/database"
	"bookstore-api/pkg/container"
	"bookstore-api/pkg/logger"
)

var (
	appLog logger.Logger = logger.Nop()

	newUserName     string
	newUserEmail    string
	newUserPassword string
	newUserRoles    []string
)

// rootCmd runs the HTTP server when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "bookstore-api",
	Short: "Bookstore catalog REST API",
	Long: `Bookstore catalog REST API: authors and books CRUD behind JWT bearer
authentication, with administrator only writes.`,
	SilenceUsage:      true,
	PersistentPreRunE: bootstrap,
	RunE:              runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := container.NewContainer(appLog)
		if err != nil {
			return err
		}
		defer c.Cleanup()

		if err := database.Migrate(c.DB); err != nil {
			return err
		}
		appLog.Info("Schema migrated", nil)
		return nil
	},
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage API users",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user that can log in through POST /api/users",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := container.NewContainer(appLog)
		if err != nil {
			return err
		}
		defer c.Cleanup()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		u, err := c.AuthService.CreateUser(ctx, model.CreateUserRequest{
			UserName: newUserName,
			Email:    newUserEmail,
			Password: newUserPassword,
			Roles:    newUserRoles,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s) roles=[%s]\n",
			u.UserName, u.ID, strings.Join(u.RoleNames(), ","))
		return nil
	},
}

// bootstrap loads .env, picks the gin mode and configures logging.
func bootstrap(cmd *cobra.Command, args []string) error {
	// Production uses the real environment, .env is optional.
	envFileErr := godotenv.Load()

	env := getEnv("APP_ENV", "development")
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	appLog = logger.Init(env)
	if envFileErr != nil {
		appLog.Debug("No .env file found, using system environment variables")
	}
	appLog.Info("Environment loaded", map[string]interface{}{"environment": env})
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	c, err := container.NewContainer(appLog)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	defer c.Cleanup()

	return Serve(c)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userCreateCmd)

	userCreateCmd.Flags().StringVar(&newUserName, "username", "", "login name")
	userCreateCmd.Flags().StringVar(&newUserEmail, "email", "", "email, used as the token subject")
	userCreateCmd.Flags().StringVar(&newUserPassword, "password", "", "plain text password, stored as a bcrypt hash")
	userCreateCmd.Flags().StringSliceVar(&newUserRoles, "role", nil, "role to assign, repeatable (e.g. Administrator)")
	_ = userCreateCmd.MarkFlagRequired("username")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("password")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
