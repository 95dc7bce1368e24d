package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/casafin/household-ledger/internal/budget"
	budgetPostgres "github.com/casafin/household-ledger/internal/budget/postgres"
	"github.com/casafin/household-ledger/internal/category"
	categoryPostgres "github.com/casafin/household-ledger/internal/category/postgres"
	expenseDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/expense"
	"github.com/casafin/household-ledger/internal/expense"
	expensePostgres "github.com/casafin/household-ledger/internal/expense/postgres"
	"github.com/casafin/household-ledger/internal/household"
	householdPostgres "github.com/casafin/household-ledger/internal/household/postgres"
	"github.com/casafin/household-ledger/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with a demo household",
	Long:  `Seed the database with a demo household, two linked members, default categories and sample expenses.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{"expenses", "settlements", "budgets", "categories", "members", "households"} {
				if err := gormDB.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		lg := logger.L()
		categoryService := category.NewService(categoryPostgres.NewCategoryRepository(gormDB), lg)
		householdService := household.NewService(
			householdPostgres.NewHouseholdRepository(gormDB),
			categorySeeder{categoryService},
			lg,
		)
		expenseService := expense.NewService(expensePostgres.NewExpenseRepository(gormDB), nil, lg)
		budgetService := budget.NewService(budgetPostgres.NewBudgetRepository(gormDB), nil, lg)

		created, founder, err := householdService.CreateHousehold(household.CreateHouseholdDTO{
			HouseholdName: "Casa Demo",
			MemberName:    "Ana",
		})
		if err != nil {
			log.Fatalf("failed to create demo household: %v", err)
		}

		_, partner, err := householdService.JoinHousehold(household.JoinHouseholdDTO{
			InviteCode: *founder.InviteCode,
			MemberName: "Beto",
		})
		if err != nil {
			log.Fatalf("failed to join demo household: %v", err)
		}

		categories, err := categoryService.ListCategories(created.ID)
		if err != nil || len(categories) == 0 {
			log.Fatalf("failed to list seeded categories: %v", err)
		}

		now := time.Now().UTC()
		samples := []struct {
			amount    float64
			paidBy    string
			splitType string
			daysAgo   int
		}{
			{120000, founder.ID, expenseDatamodel.SplitFiftyFifty, 1},
			{45000, partner.ID, expenseDatamodel.SplitFiftyFifty, 3},
			{80000, founder.ID, expenseDatamodel.SplitSoloPartner, 6},
			{30000, partner.ID, expenseDatamodel.SplitSoloMine, 9},
		}
		for i, sample := range samples {
			description := fmt.Sprintf("Gasto demo %d", i+1)
			_, err := expenseService.CreateExpense(sample.paidBy, created.ID, expense.CreateExpenseDTO{
				Amount:      sample.amount,
				Description: &description,
				CategoryID:  categories[i%len(categories)].ID,
				PaidBy:      sample.paidBy,
				SplitType:   sample.splitType,
				Date:        now.AddDate(0, 0, -sample.daysAgo),
			})
			if err != nil {
				log.Fatalf("failed to seed expense: %v", err)
			}
		}

		if _, err := budgetService.SetBudget(created.ID, budget.SetBudgetDTO{
			CategoryID: categories[0].ID,
			Month:      now,
			Amount:     500000,
		}); err != nil {
			log.Fatalf("failed to seed budget: %v", err)
		}

		fmt.Println("Seeded demo household:", created.ID)
		fmt.Println("Members:", founder.ID, partner.ID)
	},
}
