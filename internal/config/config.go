package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Addr       string     `koanf:"addr"`
	Frontend   Frontend   `koanf:"frontend"`
	Google     Google     `koanf:"google"`
	Zoom       Zoom       `koanf:"zoom"`
	Email      Email      `koanf:"email"`
	Scheduling Scheduling `koanf:"scheduling"`
}

type Frontend struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"`
}

type Google struct {
	ClientEmail string `koanf:"clientemail"`
	PrivateKey  string `koanf:"privatekey"`
	CalendarId  string `koanf:"calendarid"`
}

type Zoom struct {
	ClientId          string `koanf:"clientid"`
	ClientSecret      string `koanf:"clientsecret"`
	AccountId         string `koanf:"accountid"`
	PersonalMeetingId string `koanf:"personalmeetingid"`
	MeetingPassword   string `koanf:"meetingpassword"`
}

// Email holds the SMTP server settings and the two sending identities:
// Sender delivers owner-bound mail (notifications), Owner delivers
// user-bound mail (confirmations) so replies land in the owner's inbox.
type Email struct {
	Host   string        `koanf:"host"`
	Port   int           `koanf:"port"`
	Secure bool          `koanf:"secure"`
	Sender EmailIdentity `koanf:"sender"`
	Owner  EmailIdentity `koanf:"owner"`
}

type EmailIdentity struct {
	Name     string `koanf:"name"`
	Address  string `koanf:"address"`
	Password string `koanf:"password"`
}

type Scheduling struct {
	WorkingHoursStart      int        `koanf:"workinghoursstart"`
	WorkingHoursEnd        int        `koanf:"workinghoursend"`
	DefaultDurationMinutes int        `koanf:"defaultdurationminutes"`
	Slots                  []SlotTime `koanf:"slots"`
}

type SlotTime struct {
	Hour   int `koanf:"hour"`
	Minute int `koanf:"minute"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Addr: ":8181",
		Frontend: Frontend{
			Enabled: true,
			Dir:     "frontend",
		},
		Google: Google{
			CalendarId: "primary",
		},
		Email: Email{
			Host: "smtp.gmail.com",
			Port: 587,
		},
		Scheduling: Scheduling{
			WorkingHoursStart:      9,
			WorkingHoursEnd:        17,
			DefaultDurationMinutes: 30,
			Slots: []SlotTime{
				{Hour: 9}, {Hour: 10}, {Hour: 11},
				{Hour: 13}, {Hour: 14}, {Hour: 15}, {Hour: 16},
			},
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "PORTFOLIO_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "PORTFOLIO_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
