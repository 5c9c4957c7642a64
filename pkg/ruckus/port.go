package ruckus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// LANPortSettings is the request body for the AP LAN port settings resource.
// Setting an overwrite untag VLAN with matching members makes the port an
// untagged member of that VLAN, overriding venue-level defaults.
type LANPortSettings struct {
	UseVenueSettings     bool   `json:"useVenueSettings"`
	Enabled              bool   `json:"enabled"`
	OverwriteUntagID     int    `json:"overwriteUntagId"`
	OverwriteVLANMembers string `json:"overwriteVlanMembers"`
}

// ConfigureLANPort sets the given AP switch port to an untagged member of
// vlanID. A non-2xx response is returned as *APIError; transport errors are
// returned as-is. Neither aborts the batch — the caller logs and continues.
func (c *Client) ConfigureLANPort(ctx context.Context, venueID, apSerial string, portID, vlanID int) error {
	endpoint := fmt.Sprintf("%s/venues/%s/aps/%s/lanPorts/%d/settings",
		c.baseURL, url.PathEscape(venueID), url.PathEscape(apSerial), portID)

	payload := LANPortSettings{
		UseVenueSettings:     false,
		Enabled:              true,
		OverwriteUntagID:     vlanID,
		OverwriteVLANMembers: strconv.Itoa(vlanID),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding port settings: %w", err)
	}

	c.log.WithField("url", endpoint).Infof("PUT payload: %s", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building port settings request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithField("url", endpoint).Errorf("port settings request failed: %v", err)
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	c.log.WithField("status", resp.StatusCode).Infof("response: %s", respBody)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, URL: endpoint, Body: string(respBody)}
	}

	c.log.Infof("configured AP %s port %d at venue %s", apSerial, portID, venueID)
	return nil
}
