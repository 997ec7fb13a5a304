package client

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-resty/resty/v2"
	"magewell-cli/internal/auth"
	"magewell-cli/pkg/models"
)

// APIPath is the single endpoint every device method is multiplexed on.
const APIPath = "/mwapi"

// MagewellClient is a session with one Magewell Pro Convert device.
// It is not safe for concurrent use.
type MagewellClient struct {
	HTTP   *resty.Client
	Config ClientConfig

	authenticated bool
	log           *log.Logger
}

type ClientConfig struct {
	Address  string // host or host:port of the device
	Username string
	Password string
	Debug    bool        // dump requests and responses
	Logger   *log.Logger // defaults to log.Default()
}

func New(cfg ClientConfig) *MagewellClient {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	r := resty.New()
	r.SetBaseURL("http://" + strings.TrimRight(cfg.Address, "/"))
	r.SetHeader("Accept", "application/json")
	r.SetLogger(stdLogger{logger})
	r.SetDebug(cfg.Debug)

	return &MagewellClient{
		HTTP:   r,
		Config: cfg,
		log:    logger,
	}
}

// Address returns the device address the session was created for.
func (c *MagewellClient) Address() string {
	return c.Config.Address
}

// Authenticated reports whether a login has succeeded on this session.
func (c *MagewellClient) Authenticated() bool {
	return c.authenticated
}

// Login authenticates with the device using the MD5 of the password.
// Any failure, including an unreachable device, is logged and reported as false.
func (c *MagewellClient) Login() bool {
	var res models.StatusResponse

	body, err := c.call(map[string]string{
		"method": "login",
		"id":     c.Config.Username,
		"pass":   auth.HashPassword(c.Config.Password),
	}, &res)
	if err != nil {
		c.log.Printf("Login error: %v", err)
		return false
	}

	if !models.OK(res.Status) {
		c.log.Printf("Login failed: %s", body)
		return false
	}

	c.authenticated = true
	c.log.Printf("Successfully logged in to %s", c.Config.Address)
	return true
}

// EnsureAuthenticated logs in only if no login has succeeded yet.
func (c *MagewellClient) EnsureAuthenticated() bool {
	if c.authenticated {
		return true
	}
	return c.Login()
}

// call issues GET /mwapi with params and decodes the JSON body into result.
// The raw body is returned for logging.
func (c *MagewellClient) call(params map[string]string, result interface{}) (string, error) {
	resp, err := c.HTTP.R().
		SetQueryParams(params).
		ForceContentType("application/json").
		SetResult(result).
		Get(APIPath)

	if err != nil {
		return "", err
	}

	if resp.IsError() {
		return resp.String(), fmt.Errorf("method %s: http status %d", params["method"], resp.StatusCode())
	}

	return resp.String(), nil
}

// stdLogger routes resty's own output through the session logger.
type stdLogger struct {
	l *log.Logger
}

func (s stdLogger) Errorf(format string, v ...interface{}) { s.l.Printf("ERROR "+format, v...) }
func (s stdLogger) Warnf(format string, v ...interface{})  { s.l.Printf("WARN "+format, v...) }
func (s stdLogger) Debugf(format string, v ...interface{}) { s.l.Printf("DEBUG "+format, v...) }
