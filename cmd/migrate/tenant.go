package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pgms/config"
	"pgms/infras/database"
	"pgms/infras/otel"
	"pgms/internal/domains/admin/repository"
	"pgms/internal/tenancy"
	"pgms/internal/tenancy/schema"
	gDto "pgms/shared/dto"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const provisionPageSize = 100

type tenantTools struct {
	db          *database.Connection
	otel        otel.Otel
	provisioner schema.Provisioner
	admins      repository.Admin
}

func openTenantTools() (*tenantTools, error) {
	cfg := config.Get()

	db := database.New(cfg)
	if db.Write == nil {
		return nil, errors.New("no database connection")
	}

	otl := otel.New(cfg)

	return &tenantTools{
		db:          db,
		otel:        otl,
		provisioner: schema.NewProvisioner(db, otl, cfg),
		admins:      repository.New(db, otl),
	}, nil
}

func (t *tenantTools) Close() {
	if err := t.otel.Shutdown(context.Background()); err != nil {
		log.Warn().Err(err).Msg("failed to shutdown tracer provider")
	}

	if err := t.db.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close database connection")
	}
}

func tenantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenant",
		Short: "Provision, inspect or drop tenant tables",
	}

	cmd.AddCommand(tenantProvisionCmd(), tenantStatusCmd(), tenantDropCmd())

	return cmd
}

func tenantProvisionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provision [tenant-id]",
		Short: "Create missing tables for one tenant, or for every admin with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")

			if all == (len(args) == 1) {
				return errors.New("pass either a tenant id or --all")
			}

			tools, err := openTenantTools()
			if err != nil {
				return err
			}
			defer tools.Close()

			ctx := cmd.Context()

			if !all {
				tenantID, err := tenancy.ParseTenantID(args[0])
				if err != nil {
					return err
				}

				if err := tools.provisioner.ProvisionTenant(ctx, tenantID); err != nil {
					return err
				}

				cmd.Printf("tenant %s provisioned\n", tenantID)

				return nil
			}

			provisioned, failed, err := tools.provisionAll(ctx)
			if err != nil {
				return err
			}

			cmd.Printf("provisioned %d tenants, %d failed\n", provisioned, failed)

			if failed > 0 {
				return fmt.Errorf("%d tenants failed to provision", failed)
			}

			return nil
		},
	}

	cmd.Flags().Bool("all", false, "provision every registered admin")

	return cmd
}

func (t *tenantTools) provisionAll(ctx context.Context) (provisioned, failed int, err error) {
	for page := 1; ; page++ {
		admins, err := t.admins.FindAll(ctx, gDto.QueryParams{Page: page, Limit: provisionPageSize}, gDto.FilterGroup{})
		if err != nil {
			return provisioned, failed, fmt.Errorf("failed to list admins: %w", err)
		}

		for _, admin := range admins {
			if err := t.provisioner.ProvisionTenant(ctx, tenancy.TenantID(admin.ID)); err != nil {
				log.Error().Err(err).Int64("admin_id", admin.ID).Msg("failed to provision tenant")

				failed++

				continue
			}

			provisioned++
		}

		if len(admins) < provisionPageSize {
			return provisioned, failed, nil
		}
	}
}

func tenantStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <tenant-id>",
		Short: "List the tables a tenant is missing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := tenancy.ParseTenantID(args[0])
			if err != nil {
				return err
			}

			tools, err := openTenantTools()
			if err != nil {
				return err
			}
			defer tools.Close()

			missing, err := tools.provisioner.MissingTables(cmd.Context(), tenantID)
			if err != nil {
				return err
			}

			if len(missing) == 0 {
				cmd.Printf("tenant %s: all tables present\n", tenantID)

				return nil
			}

			names := make([]string, len(missing))
			for i, kind := range missing {
				names[i] = kind.String()
			}

			cmd.Printf("tenant %s: missing %s\n", tenantID, strings.Join(names, ", "))

			return nil
		},
	}
}

func tenantDropCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drop <tenant-id>",
		Short: "Drop every table of a tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmed, _ := cmd.Flags().GetBool("yes")
			if !confirmed {
				return errors.New("dropping tenant tables deletes their data, rerun with --yes")
			}

			tenantID, err := tenancy.ParseTenantID(args[0])
			if err != nil {
				return err
			}

			tools, err := openTenantTools()
			if err != nil {
				return err
			}
			defer tools.Close()

			if err := tools.provisioner.DropTenant(cmd.Context(), tenantID); err != nil {
				return err
			}

			cmd.Printf("tenant %s dropped\n", tenantID)

			return nil
		},
	}

	cmd.Flags().Bool("yes", false, "confirm dropping the tables")

	return cmd
}
