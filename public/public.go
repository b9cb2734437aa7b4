// Package public wraps the unauthenticated /public resource group.
package public

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/semtisem/dracoon-go/client"
	"github.com/semtisem/dracoon-go/pkg/utils"
)

type SystemInfo struct {
	LanguageDefault       string   `json:"languageDefault"`
	HideLoginInputFields  bool     `json:"hideLoginInputFields"`
	S3Hosts               []string `json:"s3Hosts,omitempty"`
	S3EnforceDirectUpload bool     `json:"s3EnforceDirectUpload,omitempty"`
	UseS3Storage          bool     `json:"useS3Storage,omitempty"`
}

type SoftwareVersion struct {
	RestAPIVersion   string `json:"restApiVersion"`
	SDSServerVersion string `json:"sdsServerVersion,omitempty"`
	BuildDate        string `json:"buildDate,omitempty"`
	IsDracoonCloud   bool   `json:"isDracoonCloud,omitempty"`
}

type Adapter struct {
	c   *client.Client
	log *logrus.Entry
}

func NewAdapter(c *client.Client) *Adapter {
	return &Adapter{
		c:   c,
		log: utils.Log.WithField("adapter", "public"),
	}
}

// GetSystemInfo returns public settings of the instance. No authentication
// required.
func (a *Adapter) GetSystemInfo(ctx context.Context) (*SystemInfo, error) {
	var info SystemInfo
	err := a.c.Public(ctx, http.MethodGet, "/public/system/info", nil, &info)
	if err != nil {
		a.log.WithError(err).Error("getting system info failed")
		return nil, err
	}
	return &info, nil
}

// GetSoftwareVersion returns the server software version. No authentication
// required.
func (a *Adapter) GetSoftwareVersion(ctx context.Context) (*SoftwareVersion, error) {
	var version SoftwareVersion
	err := a.c.Public(ctx, http.MethodGet, "/public/software/version", nil, &version)
	if err != nil {
		a.log.WithError(err).Error("getting software version failed")
		return nil, err
	}
	return &version, nil
}
