package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"settingsd/pkg/types"
)

// client is a minimal HTTP client for the settingsd API.
type client struct {
	base string
	http *http.Client
}

func newClient(base string) *client {
	return &client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *client) getSettings(w io.Writer) error {
	var resp types.SettingsResponse
	if err := c.getJSON("/settings", &resp); err != nil {
		return err
	}
	return printJSON(w, resp.Settings)
}

func (c *client) updateKey(w io.Writer, key string, value any) error {
	body, err := json.Marshal(types.UpdateRequest{Value: value})
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPut, c.base+"/settings/"+key, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	var resp types.SettingsResponse
	if err := c.doJSON(req, &resp); err != nil {
		return err
	}
	return printJSON(w, resp.Settings)
}

func (c *client) reset(w io.Writer) error {
	req, err := http.NewRequest(http.MethodPost, c.base+"/settings/reset", nil)
	if err != nil {
		return err
	}
	var resp types.SettingsResponse
	if err := c.doJSON(req, &resp); err != nil {
		return err
	}
	return printJSON(w, resp.Settings)
}

func (c *client) listModels(w io.Writer, embeddings bool) error {
	path := "/models"
	if embeddings {
		path = "/models/embeddings"
	}
	var resp types.ModelsResponse
	if err := c.getJSON(path, &resp); err != nil {
		return err
	}
	for _, m := range resp.Models {
		flags := make([]string, 0, 3)
		if m.Core {
			flags = append(flags, "core")
		}
		if m.IsBuiltIn {
			flags = append(flags, "built-in")
		}
		if !m.Enabled {
			flags = append(flags, "disabled")
		}
		fmt.Fprintf(w, "%s/%s", m.Provider, m.Name)
		if len(flags) > 0 {
			fmt.Fprintf(w, " (%s)", strings.Join(flags, ", "))
		}
		fmt.Fprintln(w)
	}
	return nil
}

func (c *client) prompt(w io.Writer) error {
	var resp types.PromptResponse
	if err := c.getJSON("/settings/prompt", &resp); err != nil {
		return err
	}
	fmt.Fprintln(w, resp.Prompt)
	return nil
}

func (c *client) watch(ctx context.Context, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/events", nil)
	if err != nil {
		return err
	}
	// No timeout for a long-lived stream.
	streamClient := &http.Client{}
	resp, err := streamClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	sc := bufio.NewScanner(resp.Body)
	for sc.Scan() {
		fmt.Fprintln(w, sc.Text())
	}
	return sc.Err()
}

func (c *client) getJSON(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}

func (c *client) doJSON(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		var apiErr types.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
