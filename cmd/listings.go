// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"copybus/cli/internal/backend"
	"copybus/cli/internal/httperrors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// runListing gates a domain command on the routed graph, runs it, and
// handles the two cross-cutting failure modes: a rejected bearer token drops
// the session so the next command routes to sign-in, and network failures
// get the troubleshooting treatment.
func runListing(ctx context.Context, name string, list func(context.Context) error) error {
	if err := requireGraph(name); err != nil {
		return err
	}

	err := list(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, backend.ErrUnauthorized) {
		sess.Invalidate(ctx)
		fmt.Println("🔒 Your session has expired. Please sign in again.")
		return err
	}
	return httperrors.FormatNetworkError(err, "listing "+name)
}

func showCompanies(ctx context.Context) error {
	companies, err := api.ListCompanies(ctx)
	if err != nil {
		return err
	}
	data := pterm.TableData{{"ID", "Name", "CNPJ", "Email", "Phone"}}
	for _, c := range companies {
		data = append(data, []string{strconv.Itoa(c.ID), c.Name, c.CNPJ, c.Email, c.Phone})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func showManagers(ctx context.Context) error {
	managers, err := api.ListManagers(ctx)
	if err != nil {
		return err
	}
	data := pterm.TableData{{"ID", "Name", "Email", "Status"}}
	for _, m := range managers {
		status := "inactive"
		if m.Active {
			status = "active"
		}
		data = append(data, []string{strconv.Itoa(m.ID), m.Name, m.Email, status})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func showVehicles(ctx context.Context) error {
	vehicles, err := api.ListVehicles(ctx)
	if err != nil {
		return err
	}
	data := pterm.TableData{{"ID", "Prefix", "Model", "Plate", "Year", "Status", "Odometer"}}
	for _, v := range vehicles {
		data = append(data, []string{
			strconv.Itoa(v.ID), v.Prefix, v.Model, v.Plate,
			strconv.Itoa(v.Year), v.Status, strconv.Itoa(v.Odometer),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func showDrivers(ctx context.Context) error {
	drivers, err := api.ListDrivers(ctx)
	if err != nil {
		return err
	}
	data := pterm.TableData{{"ID", "Name", "License", "Phone"}}
	for _, d := range drivers {
		data = append(data, []string{strconv.Itoa(d.ID), d.Name, d.License, d.Phone})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func showFleets(ctx context.Context) error {
	fleets, err := api.ListFleets(ctx)
	if err != nil {
		return err
	}
	data := pterm.TableData{{"ID", "Name"}}
	for _, f := range fleets {
		data = append(data, []string{strconv.Itoa(f.ID), f.Name})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func showEmployees(ctx context.Context) error {
	employees, err := api.ListEmployees(ctx)
	if err != nil {
		return err
	}
	data := pterm.TableData{{"ID", "Name", "Email"}}
	for _, e := range employees {
		data = append(data, []string{strconv.Itoa(e.ID), e.Name, e.Email})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// listingByName lets the interactive home menu dispatch to the same
// functions the subcommands run.
var listingByName = map[string]func(context.Context) error{
	"companies": showCompanies,
	"managers":  showManagers,
	"vehicles":  showVehicles,
	"drivers":   showDrivers,
	"fleets":    showFleets,
	"employees": showEmployees,
}

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "List registered companies",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListing(cmd.Context(), "companies", showCompanies)
	},
}

var managersCmd = &cobra.Command{
	Use:   "managers",
	Short: "List fleet managers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListing(cmd.Context(), "managers", showManagers)
	},
}

var vehiclesCmd = &cobra.Command{
	Use:   "vehicles",
	Short: "List the company's vehicles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListing(cmd.Context(), "vehicles", showVehicles)
	},
}

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "List the company's drivers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListing(cmd.Context(), "drivers", showDrivers)
	},
}

var fleetsCmd = &cobra.Command{
	Use:   "fleets",
	Short: "List the company's fleets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListing(cmd.Context(), "fleets", showFleets)
	},
}

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "List the company's employees",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListing(cmd.Context(), "employees", showEmployees)
	},
}

func init() {
	rootCmd.AddCommand(companiesCmd)
	rootCmd.AddCommand(managersCmd)
	rootCmd.AddCommand(vehiclesCmd)
	rootCmd.AddCommand(driversCmd)
	rootCmd.AddCommand(fleetsCmd)
	rootCmd.AddCommand(employeesCmd)
}
