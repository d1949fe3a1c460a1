// Package node holds the declarative description of the Apprise node that the
// host uses to render its parameter form.
package node

import (
	"github.com/notifyhub/apprise-node/internal/credential"
	"github.com/notifyhub/apprise-node/internal/domain"
)

// Descriptor mirrors the host's node type description.
type Descriptor struct {
	Name        string                `json:"name"`
	DisplayName string                `json:"displayName"`
	Description string                `json:"description"`
	Version     int                   `json:"version"`
	Group       []string              `json:"group"`
	Credentials []CredentialRef       `json:"credentials"`
	Properties  []credential.Property `json:"properties"`
}

// CredentialRef names a credential the node needs.
type CredentialRef struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// keyMode matches items whose useKey parameter is true.
var keyMode = map[string]any{"useKey": []bool{true}}

func Describe() Descriptor {
	return Descriptor{
		Name:        "apprise",
		DisplayName: "Apprise",
		Description: "Send notifications through an Apprise API instance",
		Version:     1,
		Group:       []string{"transform"},
		Credentials: []CredentialRef{{Name: credential.Name, Required: true}},
		Properties: []credential.Property{
			{
				DisplayName: "Title",
				Name:        "title",
				Type:        "string",
				Default:     "",
				Placeholder: "Notification Title",
				Description: "The title of the notifications",
			},
			{
				DisplayName: "Body",
				Name:        "body",
				Type:        "string",
				Default:     "",
				Placeholder: "Notification Body",
				Description: "The body of the notifications",
				Required:    true,
			},
			{
				DisplayName: "Type",
				Name:        "type",
				Type:        "options",
				Default:     string(domain.NotifyInfo),
				Description: "The type of notifications",
				Options: []credential.Option{
					{Name: "Info", Value: string(domain.NotifyInfo)},
					{Name: "Success", Value: string(domain.NotifySuccess)},
					{Name: "Warning", Value: string(domain.NotifyWarning)},
					{Name: "Failure", Value: string(domain.NotifyFailure)},
				},
			},
			{
				DisplayName: "Use Key?",
				Name:        "useKey",
				Type:        "boolean",
				Default:     false,
				Description: "Whether you want to notify using a persistent store key",
			},
			{
				DisplayName: "URLs",
				Name:        "urls",
				Type:        "string",
				Default:     "",
				Placeholder: "URLs",
				Description: "A comma or space-separated list of URLs to send the notification to",
				Required:    true,
				DisplayHide: keyMode,
			},
			{
				DisplayName: "Key",
				Name:        "key",
				Type:        "string",
				Default:     "",
				Placeholder: "Key",
				Description: "The configuration key",
				Required:    true,
				DisplayShow: keyMode,
			},
			{
				DisplayName: "Tag",
				Name:        "tag",
				Type:        "string",
				Default:     "",
				Placeholder: "Tag",
				Description: "Comma-separated list of tags",
				DisplayShow: keyMode,
			},
		},
	}
}
