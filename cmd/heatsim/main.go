package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Kvello/heatsim/cmd/app"
	httpctrl "github.com/Kvello/heatsim/internal/controllers/http"
	modbusctrl "github.com/Kvello/heatsim/internal/controllers/modbus"
	mqttctrl "github.com/Kvello/heatsim/internal/controllers/mqtt"
	"github.com/Kvello/heatsim/internal/device"
	"github.com/Kvello/heatsim/internal/house"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "path to config file (.yaml/.yml/.json)")
	flag.Parse()

	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}

	env, err := cfg.Envelope()
	if err != nil {
		log.Fatal(err)
	}

	h, err := house.New(cfg.Snapshot(), env, cfg.ControllerParams(), cfg.Heating.COP)
	if err != nil {
		log.Fatal(err)
	}
	dev := device.New(cfg.DeviceID, h)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return h.Run(ctx, cfg.House.TickInterval)
	})

	if cfg.Controllers.HTTP.Enabled {
		srv := httpctrl.New(h, cfg.Controllers.HTTP.Addr, dev.ID)
		log.Printf("heatsim http listening on %s", cfg.Controllers.HTTP.Addr)
		g.Go(func() error {
			return srv.Run(ctx)
		})
	}

	if cfg.Controllers.MQTT.Enabled {
		mc, err := mqttctrl.New(h, mqttctrl.Config{
			DeviceID:        dev.ID,
			BrokerURL:       cfg.Controllers.MQTT.BrokerURL,
			ClientID:        cfg.Controllers.MQTT.ClientID,
			BaseTopic:       cfg.Controllers.MQTT.BaseTopic,
			QoS:             cfg.Controllers.MQTT.QoS,
			RetainSnapshot:  cfg.Controllers.MQTT.RetainSnapshot,
			PublishInterval: cfg.Controllers.MQTT.PublishInterval,
			Username:        cfg.Controllers.MQTT.Username,
			Password:        cfg.Controllers.MQTT.Password,
		})
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("heatsim mqtt connecting to %s", cfg.Controllers.MQTT.BrokerURL)
		g.Go(func() error {
			return mc.Run(ctx)
		})
	}

	if cfg.Controllers.MODBUS.Enabled {
		bc, err := modbusctrl.New(h, modbusctrl.Config{
			DeviceID:     dev.ID,
			Addr:         cfg.Controllers.MODBUS.Addr,
			UnitID:       cfg.Controllers.MODBUS.UnitID,
			SyncInterval: cfg.Controllers.MODBUS.SyncInterval,
		})
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("heatsim modbus listening on %s", cfg.Controllers.MODBUS.Addr)
		g.Go(func() error {
			return bc.Run(ctx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("exited: %v", err)
	}
}
