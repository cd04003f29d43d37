package main

import (
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/blazeris/CustomerOrders/pkg/application/service"
	"github.com/blazeris/CustomerOrders/pkg/domain/model"
	"github.com/blazeris/CustomerOrders/pkg/infrastructure/console"
	"github.com/blazeris/CustomerOrders/pkg/infrastructure/mysql"
)

func main() {
	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{})

	app := &cli.App{
		Name:  "orderentry",
		Usage: "interactive customer order entry",
		Commands: []*cli.Command{
			{
				Name:   "place-order",
				Usage:  "walk a customer through placing one order",
				Action: placeOrder(logger),
			},
			{
				Name:   "seed",
				Usage:  "insert the sample product catalog",
				Action: seed(logger),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.WithError(err).Fatal("application failed")
	}
}

func placeOrder(logger *log.Logger) cli.ActionFunc {
	return func(c *cli.Context) error {
		db, err := connect(logger)
		if err != nil {
			return err
		}
		defer db.Close()

		store := mysql.NewStore(db)
		terminal := console.New(os.Stdin, os.Stdout)
		placement := service.NewPlacementService(store, terminal, time.Now, logger)

		if err := placement.PlaceOrder(); err != nil {
			return err
		}
		logger.Info("Completed Satisfactorily")
		return nil
	}
}

func seed(logger *log.Logger) cli.ActionFunc {
	return func(c *cli.Context) error {
		db, err := connect(logger)
		if err != nil {
			return err
		}
		defer db.Close()

		products := mysql.NewStore(db).Products()
		for _, product := range sampleProducts() {
			product := product
			if err := products.Add(&product); err != nil {
				if errors.Is(err, model.ErrDuplicateProduct) {
					logger.WithField("upc", product.UPC).Info("product already seeded")
					continue
				}
				return err
			}
			logger.WithField("upc", product.UPC).Info("seeded product")
		}
		return nil
	}
}

func connect(logger *log.Logger) (*sqlx.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	db, err := mysql.Connect(cfg.dsn())
	if err != nil {
		return nil, err
	}
	if err := mysql.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	logger.WithFields(log.Fields{"host": cfg.DBHost, "database": cfg.DBName}).Info("connected to mysql")
	return db, nil
}
