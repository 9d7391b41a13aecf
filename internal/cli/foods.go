package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Lixing-Zhang/food-dashboard/internal/dashboard"
	"github.com/Lixing-Zhang/food-dashboard/internal/models"
	"github.com/spf13/cobra"
)

var (
	foodName        string
	foodImage       string
	foodPrice       float64
	foodDescription string
	foodAvailable   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDashboard(cmd, func(ctx context.Context, d *dashboard.Dashboard) error {
			printFoods(cmd.OutOrStdout(), d)
			return nil
		})
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(foodName) == "" {
			return fmt.Errorf("--name is required")
		}
		return withDashboard(cmd, func(ctx context.Context, d *dashboard.Dashboard) error {
			err := d.HandleAddFood(ctx, models.FoodInput{
				Name:        foodName,
				Image:       foodImage,
				Price:       foodPrice,
				Description: foodDescription,
			})
			if err != nil {
				return fmt.Errorf("add food: %w", err)
			}
			printFoods(cmd.OutOrStdout(), d)
			return nil
		})
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit a food; only the flags given are changed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var patch models.FoodPatch
		flags := cmd.Flags()
		if flags.Changed("name") {
			patch.Name = &foodName
		}
		if flags.Changed("image") {
			patch.Image = &foodImage
		}
		if flags.Changed("price") {
			patch.Price = &foodPrice
		}
		if flags.Changed("description") {
			patch.Description = &foodDescription
		}
		if flags.Changed("available") {
			patch.Available = &foodAvailable
		}

		return withDashboard(cmd, func(ctx context.Context, d *dashboard.Dashboard) error {
			food, ok := d.FindFood(id)
			if !ok {
				return fmt.Errorf("food %d not found", id)
			}
			d.HandleEditFood(food)
			if err := d.HandleUpdateFood(ctx, patch); err != nil {
				return fmt.Errorf("update food %d: %w", id, err)
			}
			d.ToggleEditModal()
			printFoods(cmd.OutOrStdout(), d)
			return nil
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withDashboard(cmd, func(ctx context.Context, d *dashboard.Dashboard) error {
			if err := d.HandleDeleteFood(ctx, id); err != nil {
				return fmt.Errorf("delete food %d: %w", id, err)
			}
			printFoods(cmd.OutOrStdout(), d)
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{addCmd, updateCmd} {
		c.Flags().StringVar(&foodName, "name", "", "Food name")
		c.Flags().StringVar(&foodImage, "image", "", "Image URL")
		c.Flags().Float64Var(&foodPrice, "price", 0, "Price")
		c.Flags().StringVar(&foodDescription, "description", "", "Description")
	}
	updateCmd.Flags().BoolVar(&foodAvailable, "available", true, "Whether the food is available")
}

func parseID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be > 0")
	}
	return id, nil
}
