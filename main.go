package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/eclipse/paho.mqtt.golang"
	"github.com/jonboulle/clockwork"
	"github.com/matt-g-everett/herotx/api"
	"github.com/matt-g-everett/herotx/scene"
	"github.com/matt-g-everett/herotx/stream"
	"gopkg.in/yaml.v2"
)

type config struct {
	Scene  scene.Config  `yaml:"scene"`
	Stream stream.Config `yaml:"stream"`
	Api    api.Config    `yaml:"api"`
}

func defaultConfig() config {
	return config{
		Scene:  scene.DefaultConfig(),
		Stream: stream.DefaultConfig(),
		Api:    api.DefaultConfig(),
	}
}

type app struct {
	Config    config
	Client    mqtt.Client
	Api       *api.Api
	Scheduler *stream.Scheduler
}

func newApp() *app {
	a := new(app)
	a.Config = defaultConfig()
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
}

// readConfig layers the YAML file, if present, and HERO_* variables over the
// defaults.
func (a *app) readConfig(configPath string) error {
	f, err := os.Open(configPath)
	switch {
	case os.IsNotExist(err):
		log.Printf("No config at %s, using defaults", configPath)
	case err != nil:
		return err
	default:
		defer f.Close()
		err := yaml.NewDecoder(f).Decode(&a.Config)
		if errors.Is(err, io.EOF) {
			log.Printf("Empty config at %s, using defaults", configPath)
		} else if err != nil {
			return fmt.Errorf("decode %s: %w", configPath, err)
		}
	}

	if err := env.Parse(&a.Config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if a.Config.Stream.FrameRate == 0 {
		return &scene.ConfigError{Field: "stream.frameRate", Reason: "must be positive when streaming"}
	}
	return a.Config.Stream.Validate()
}

func (a *app) connect() error {
	c := a.Config.Stream.Mqtt
	if c.URL == "" {
		log.Println("No MQTT broker configured, serving frames over HTTP only")
		return nil
	}

	options := mqtt.NewClientOptions().
		AddBroker(c.URL).
		SetClientID(c.ClientID).
		SetUsername(c.Username).
		SetPassword(c.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}

func (a *app) run(ctx context.Context) error {
	s, err := scene.Build(a.Config.Scene)
	if err != nil {
		return err
	}
	if err := a.connect(); err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	a.Api = api.NewApi(a.Config.Api)
	surfaces := stream.Surfaces{a.Api}
	if a.Client != nil {
		surfaces = append(surfaces, stream.NewMQTTSurface(a.Config.Stream, a.Client))
		defer a.Client.Disconnect(250)
	}

	a.Scheduler = stream.NewScheduler(s, surfaces, a.Config.Stream, clockwork.NewRealClock())
	if err := a.Scheduler.Mount(); err != nil {
		return err
	}
	defer func() {
		if err := a.Scheduler.Unmount(); err != nil {
			log.Printf("Unmount: %v", err)
		}
	}()

	return a.Api.Serve(ctx)
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	a := newApp()
	if err := a.readConfig(*configPath); err != nil {
		log.Fatalf("Config: %v", err)
	}
	log.Printf("Config: %+v", a.Config.Scene)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.run(ctx); err != nil {
		log.Fatalf("Run: %v", err)
	}
}
