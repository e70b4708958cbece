package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mahabubulhasibshawon/shiptrack/internal/bootstrap"
	"github.com/mahabubulhasibshawon/shiptrack/internal/domain"
)

// opener connects to the configured backend for the duration of one command.
type opener func(ctx context.Context) (*bootstrap.App, error)

type cli struct {
	open opener
}

func newRootCmd(open opener) *cobra.Command {
	c := &cli{open: open}
	root := &cobra.Command{
		Use:          "shipctl",
		Short:        "Manage shipment records",
		Long:         `Create, search, edit, delete and export shipment records stored in the configured backend.`,
		SilenceUsage: true,
	}
	root.AddCommand(c.listCmd(), c.addCmd(), c.editCmd(), c.deleteCmd(), c.exportCmd())
	return root
}

// withApp opens the backend, runs fn and closes it again.
func (c *cli) withApp(cmd *cobra.Command, fn func(app *bootstrap.App) error) error {
	app, err := c.open(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(app)
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List shipments, optionally filtered by tracking ID, receiver or status",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return c.withApp(cmd, func(app *bootstrap.App) error {
				shipments, total, err := app.Service.List(cmd.Context(), query)
				if err != nil {
					return err
				}
				return printTable(cmd.OutOrStdout(), shipments, total)
			})
		},
	}
}

func printTable(out io.Writer, shipments []domain.Shipment, total int) error {
	if total == 0 {
		_, err := fmt.Fprintln(out, "No shipments yet.")
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TRACKING ID\tRECEIVER\tTYPE\tSTATUS\tCREATED")
	for _, s := range shipments {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.TrackingID, s.ReceiverName, s.ShipmentType, s.Status, s.CreatedDate)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%d of %d shipments\n", len(shipments), total)
	return err
}

type shipmentFlags struct {
	sender, receiver, address, pincode string
	weight                             float64
	shipmentType, status               string
}

func (f *shipmentFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.sender, "sender", "", "sender name")
	fl.StringVar(&f.receiver, "receiver", "", "receiver name")
	fl.StringVar(&f.address, "address", "", "receiver address")
	fl.StringVar(&f.pincode, "pincode", "", "6-digit delivery pincode")
	fl.Float64Var(&f.weight, "weight", 0, "package weight in kg")
	fl.StringVar(&f.shipmentType, "type", string(domain.ShipmentTypeStandard), "Express, Standard or Economy")
	fl.StringVar(&f.status, "status", string(domain.StatusBooked), "Booked, In Transit or Delivered")
}

// apply copies the flags the user set onto s. With all=true every flag is copied.
func (f *shipmentFlags) apply(cmd *cobra.Command, s *domain.Shipment, all bool) {
	changed := func(name string) bool { return all || cmd.Flags().Changed(name) }
	if changed("sender") {
		s.SenderName = f.sender
	}
	if changed("receiver") {
		s.ReceiverName = f.receiver
	}
	if changed("address") {
		s.ReceiverAddress = f.address
	}
	if changed("pincode") {
		s.DeliveryPincode = f.pincode
	}
	if changed("weight") {
		s.PackageWeight = f.weight
	}
	if changed("type") {
		s.ShipmentType = domain.ShipmentType(f.shipmentType)
	}
	if changed("status") {
		s.Status = domain.Status(f.status)
	}
}

func (c *cli) addCmd() *cobra.Command {
	var f shipmentFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Book a new shipment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var s domain.Shipment
			f.apply(cmd, &s, true)
			return c.withApp(cmd, func(app *bootstrap.App) error {
				created, err := app.Service.Create(cmd.Context(), s)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", created.TrackingID)
				return err
			})
		},
	}
	f.register(cmd)
	return cmd
}

func (c *cli) editCmd() *cobra.Command {
	var f shipmentFlags
	cmd := &cobra.Command{
		Use:   "edit <trackingId>",
		Short: "Change fields of an existing shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(app *bootstrap.App) error {
				current, err := app.Service.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				f.apply(cmd, &current, false)
				updated, err := app.Service.Update(cmd.Context(), args[0], current)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s)\n", updated.TrackingID, updated.Status)
				return err
			})
		},
	}
	f.register(cmd)
	return cmd
}

func (c *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <trackingId>",
		Short: "Delete a shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(app *bootstrap.App) error {
				if err := app.Service.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return err
			})
		},
	}
}

func (c *cli) exportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every shipment to stdout as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unsupported format %q (want json or yaml)", format)
			}
			return c.withApp(cmd, func(app *bootstrap.App) error {
				shipments, _, err := app.Service.List(cmd.Context(), "")
				if err != nil {
					return err
				}
				return export(cmd.OutOrStdout(), format, shipments)
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	return cmd
}

func export(out io.Writer, format string, shipments []domain.Shipment) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(shipments); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(shipments)
}
