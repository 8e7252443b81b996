package client

import (
	"context"

	"github.com/tradewire/mt5bridge/go/conn"
	"github.com/tradewire/mt5bridge/go/protocol"
)

// InitParams configure terminal initialization.
type InitParams struct {
	Path     string
	Login    int64
	Password string
	Server   string
	Timeout  int64
	Portable bool
}

// HealthInfo is the decoded terminal health probe.
type HealthInfo struct {
	Healthy      bool
	MT5Available bool
	Connected    bool
	TradeAllowed bool
	Build        string
	Reason       string
}

// FunctionInfo describes one remotely callable terminal function.
type FunctionInfo struct {
	Name string `json:"name"`
	Doc  string `json:"doc"`
}

// Initialize starts the remote terminal session.
func (c *Client) Initialize(ctx context.Context, params InitParams) (bool, error) {
	return resilientCall(ctx, c, "initialize", "",
		func(ctx context.Context, stub protocol.MT5ServiceClient) (bool, error) {
			var resp, err = stub.Initialize(ctx, &protocol.InitRequest{
				Path:     params.Path,
				Login:    params.Login,
				Password: params.Password,
				Server:   params.Server,
				Timeout:  params.Timeout,
				Portable: params.Portable,
			})
			if err != nil {
				return false, err
			}
			return resp.GetResult(), nil
		})
}

// Login authenticates a trading account on the remote terminal.
func (c *Client) Login(ctx context.Context, login int64, password, server string, timeout int64) (bool, error) {
	return resilientCall(ctx, c, "login", "",
		func(ctx context.Context, stub protocol.MT5ServiceClient) (bool, error) {
			var resp, err = stub.Login(ctx, &protocol.LoginRequest{
				Login:    login,
				Password: password,
				Server:   server,
				Timeout:  timeout,
			})
			if err != nil {
				return false, err
			}
			return resp.GetResult(), nil
		})
}

// Shutdown stops the remote terminal session.
func (c *Client) Shutdown(ctx context.Context) error {
	var _, err = resilientCall(ctx, c, "shutdown", "",
		func(ctx context.Context, stub protocol.MT5ServiceClient) (*protocol.Empty, error) {
			return stub.Shutdown(ctx, &protocol.Empty{})
		})
	return err
}

// Version returns the terminal version.
func (c *Client) Version(ctx context.Context) (*VersionInfo, error) {
	return resilientCall(ctx, c, "version", "version",
		func(ctx context.Context, stub protocol.MT5ServiceClient) (*VersionInfo, error) {
			var resp, err = stub.Version(ctx, &protocol.Empty{})
			if err != nil {
				return nil, err
			}
			return &VersionInfo{
				Major: resp.GetMajor(),
				Minor: resp.GetMinor(),
				Build: resp.GetBuild(),
			}, nil
		})
}

// LastErrorInfo returns the terminal's last error.
func (c *Client) LastErrorInfo(ctx context.Context) (*LastError, error) {
	return resilientCall(ctx, c, "last_error", "",
		func(ctx context.Context, stub protocol.MT5ServiceClient) (*LastError, error) {
			var resp, err = stub.LastError(ctx, &protocol.Empty{})
			if err != nil {
				return nil, err
			}
			return &LastError{Code: resp.GetCode(), Message: resp.GetMessage()}, nil
		})
}

// TerminalInfo returns the terminal application snapshot.
func (c *Client) TerminalInfo(ctx context.Context) (*TerminalInfo, error) {
	return resilientCall(ctx, c, "terminal_info", "terminal_info",
		func(ctx context.Context, stub protocol.MT5ServiceClient) (*TerminalInfo, error) {
			var resp, err = stub.TerminalInfo(ctx, &protocol.Empty{})
			if err != nil {
				return nil, err
			}
			var out TerminalInfo
			if err = decodeJSON(resp.GetJsonData(), &out); err != nil {
				return nil, err
			}
			return &out, nil
		})
}

// AccountInfo returns the trading account snapshot.
func (c *Client) AccountInfo(ctx context.Context) (*AccountInfo, error) {
	return resilientCall(ctx, c, "account_info", "account_info",
		func(ctx context.Context, stub protocol.MT5ServiceClient) (*AccountInfo, error) {
			var resp, err = stub.AccountInfo(ctx, &protocol.Empty{})
			if err != nil {
				return nil, err
			}
			var out AccountInfo
			if err = decodeJSON(resp.GetJsonData(), &out); err != nil {
				return nil, err
			}
			return &out, nil
		})
}

// HealthCheck probes the remote terminal.
func (c *Client) HealthCheck(ctx context.Context) (*HealthInfo, error) {
	return resilientCall(ctx, c, "health_check", "",
		func(ctx context.Context, stub protocol.MT5ServiceClient) (*HealthInfo, error) {
			var resp, err = stub.HealthCheck(ctx, &protocol.Empty{})
			if err != nil {
				return nil, err
			}
			return &HealthInfo{
				Healthy:      resp.GetHealthy(),
				MT5Available: resp.GetMt5Available(),
				Connected:    resp.GetConnected(),
				TradeAllowed: resp.GetTradeAllowed(),
				Build:        resp.GetBuild(),
				Reason:       resp.GetReason(),
			}, nil
		})
}

// Ping checks bridge liveness without touching the terminal.
func (c *Client) Ping(ctx context.Context) (bool, error) {
	return resilientCall(ctx, c, "ping", "",
		func(ctx context.Context, stub protocol.MT5ServiceClient) (bool, error) {
			var resp, err = stub.Ping(ctx, &protocol.Empty{})
			if err != nil {
				return false, err
			}
			return resp.GetResult(), nil
		})
}

// Constants returns the terminal constants table loaded at connect.
func (c *Client) Constants() *conn.Constants { return c.mgr.Constants() }

// ListFunctions enumerates the remotely callable terminal functions.
func (c *Client) ListFunctions(ctx context.Context) ([]FunctionInfo, error) {
	return resilientCall(ctx, c, "list_functions", "list_functions",
		func(ctx context.Context, stub protocol.MT5ServiceClient) ([]FunctionInfo, error) {
			var resp, err = stub.ListFunctions(ctx, &protocol.Empty{})
			if err != nil {
				return nil, err
			}
			return decodeJSONList[FunctionInfo](resp.GetJsonItems())
		})
}
