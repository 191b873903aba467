package functions

import (
	"context"
	"errors"

	"github.com/postmcp/postman"
)

const (
	SayHello         = "mcp__sayHello"
	ReverseString    = "mcp__reverseString"
	GetCollections   = "mcp__get_collections"
	GetCollection    = "mcp__get_collection"
	CreateCollection = "mcp__create_collection"
	AddRequest       = "mcp__add_request"
	GetEnvironments  = "mcp__get_environments"
	GetEnvironment   = "mcp__get_environment"
	CreateEnv        = "mcp__create_environment"
	RunCollection    = "mcp__run_collection"
)

const errVariablesRequired = "Environment variables are required"

// Remote is the subset of the Postman client the catalog drives.
type Remote interface {
	ListCollections(ctx context.Context) (postman.Payload, error)
	GetCollection(ctx context.Context, collectionID string) (postman.Payload, error)
	CreateCollection(ctx context.Context, name, description string) (postman.Payload, error)
	AddRequestToCollection(ctx context.Context, collectionID string, request postman.RequestSpec, folderPath string) (postman.Payload, error)
	ListEnvironments(ctx context.Context) (postman.Payload, error)
	GetEnvironment(ctx context.Context, environmentID string) (postman.Payload, error)
	CreateEnvironment(ctx context.Context, name string, variables []postman.Variable) (postman.Payload, error)
	RunCollection(ctx context.Context, collectionID, environmentID string) (postman.Payload, error)
}

var _ Remote = (*postman.Client)(nil)

func str(description string) Property {
	return Property{Description: description, Type: "string"}
}

func obj(description string) Property {
	return Property{Description: description, Type: "object"}
}

// Catalog returns the full function list backed by remote, in the order it
// is presented to callers.
func Catalog(remote Remote) []Function {
	return []Function{
		{
			Definition: Definition{
				Name:        SayHello,
				Description: "A warm, friendly greeting from your new Workers MCP server.",
				Parameters: ObjectParameters(map[string]Property{
					"name": str("the name of the person we are greeting."),
				}, "name"),
			},
			Handler: HandlerFunc(func(_ context.Context, args Args) (any, error) {
				var in struct {
					Name string `mapstructure:"name"`
				}
				if err := args.Decode(&in); err != nil {
					return nil, err
				}
				return Greet(in.Name), nil
			}),
		},
		{
			Definition: Definition{
				Name:        ReverseString,
				Description: "Reverses the characters in a string.",
				Parameters: ObjectParameters(map[string]Property{
					"input": str("the string to reverse."),
				}, "input"),
			},
			Handler: HandlerFunc(func(_ context.Context, args Args) (any, error) {
				var in struct {
					Input string `mapstructure:"input"`
				}
				if err := args.Decode(&in); err != nil {
					return nil, err
				}
				return Reverse(in.Input), nil
			}),
		},
		{
			Definition: Definition{
				Name:        GetCollections,
				Description: "Get all Postman collections for the current user.",
				Parameters:  ObjectParameters(nil),
			},
			Handler: HandlerFunc(func(ctx context.Context, _ Args) (any, error) {
				return payload(remote.ListCollections(ctx))
			}),
		},
		{
			Definition: Definition{
				Name:        GetCollection,
				Description: "Get a specific Postman collection by ID.",
				Parameters: ObjectParameters(map[string]Property{
					"collectionId": str("The ID of the collection to retrieve."),
				}, "collectionId"),
			},
			Handler: HandlerFunc(func(ctx context.Context, args Args) (any, error) {
				var in struct {
					CollectionID string `mapstructure:"collectionId"`
				}
				if err := args.Decode(&in); err != nil {
					return nil, err
				}
				return payload(remote.GetCollection(ctx, in.CollectionID))
			}),
		},
		{
			Definition: Definition{
				Name:        CreateCollection,
				Description: "Create a new Postman collection.",
				Parameters: ObjectParameters(map[string]Property{
					"name":        str("The name of the collection to create."),
					"description": str("Optional description for the collection."),
				}, "name"),
			},
			Handler: HandlerFunc(func(ctx context.Context, args Args) (any, error) {
				var in struct {
					Name        string `mapstructure:"name"`
					Description string `mapstructure:"description"`
				}
				if err := args.Decode(&in); err != nil {
					return nil, err
				}
				return payload(remote.CreateCollection(ctx, in.Name, in.Description))
			}),
		},
		{
			Definition: Definition{
				Name:        AddRequest,
				Description: "Add a request to an existing Postman collection.",
				Parameters: ObjectParameters(map[string]Property{
					"collectionId": str("The ID of the collection to add the request to."),
					"name":         str("The name of the request."),
					"method":       str("The HTTP method for the request (GET, POST, etc.)."),
					"url":          str("The URL for the request."),
					"description":  str("Optional description for the request."),
					"headers":      obj("Optional headers for the request."),
					"body":         obj("Optional body for the request."),
					"tests":        str("Optional JavaScript test code for the request."),
					"folderPath":   str("Optional folder path where the request should be added (e.g. \"Folder/Subfolder\")."),
				}, "collectionId", "name", "method", "url"),
			},
			Handler: HandlerFunc(func(ctx context.Context, args Args) (any, error) {
				var in struct {
					CollectionID string `mapstructure:"collectionId"`
					Name         string `mapstructure:"name"`
					Method       string `mapstructure:"method"`
					URL          string `mapstructure:"url"`
					Description  string `mapstructure:"description"`
					Headers      any    `mapstructure:"headers"`
					Body         any    `mapstructure:"body"`
					Tests        string `mapstructure:"tests"`
					FolderPath   string `mapstructure:"folderPath"`
				}
				if err := args.Decode(&in); err != nil {
					return nil, err
				}
				request := postman.RequestSpec{
					Name:        in.Name,
					Method:      in.Method,
					URL:         in.URL,
					Description: in.Description,
					Headers:     in.Headers,
					Body:        in.Body,
					Tests:       in.Tests,
				}
				return payload(remote.AddRequestToCollection(ctx, in.CollectionID, request, in.FolderPath))
			}),
		},
		{
			Definition: Definition{
				Name:        GetEnvironments,
				Description: "Get all Postman environments for the current user.",
				Parameters:  ObjectParameters(nil),
			},
			Handler: HandlerFunc(func(ctx context.Context, _ Args) (any, error) {
				return payload(remote.ListEnvironments(ctx))
			}),
		},
		{
			Definition: Definition{
				Name:        GetEnvironment,
				Description: "Get a specific Postman environment by ID.",
				Parameters: ObjectParameters(map[string]Property{
					"environmentId": str("The ID of the environment to retrieve."),
				}, "environmentId"),
			},
			Handler: HandlerFunc(func(ctx context.Context, args Args) (any, error) {
				var in struct {
					EnvironmentID string `mapstructure:"environmentId"`
				}
				if err := args.Decode(&in); err != nil {
					return nil, err
				}
				return payload(remote.GetEnvironment(ctx, in.EnvironmentID))
			}),
		},
		{
			Definition: Definition{
				Name:        CreateEnv,
				Description: "Create a new Postman environment.",
				Parameters: ObjectParameters(map[string]Property{
					"name":      str("The name of the environment to create."),
					"variables": obj("Array of key-value pairs for environment variables."),
				}, "name", "variables"),
			},
			Handler: HandlerFunc(func(ctx context.Context, args Args) (any, error) {
				var in struct {
					Name      string `mapstructure:"name"`
					Variables any    `mapstructure:"variables"`
				}
				if err := args.Decode(&in); err != nil {
					return nil, err
				}
				if in.Variables == nil {
					return nil, &postman.ValidationError{Err: errors.New(errVariablesRequired)}
				}
				vars, err := variables(in.Variables)
				if err != nil {
					return nil, err
				}
				return payload(remote.CreateEnvironment(ctx, in.Name, vars))
			}),
		},
		{
			Definition: Definition{
				Name:        RunCollection,
				Description: "Run a Postman collection and return the results.",
				Parameters: ObjectParameters(map[string]Property{
					"collectionId":  str("The ID of the collection to run."),
					"environmentId": str("Optional ID of the environment to use for the run."),
				}, "collectionId"),
			},
			Handler: HandlerFunc(func(ctx context.Context, args Args) (any, error) {
				var in struct {
					CollectionID  string `mapstructure:"collectionId"`
					EnvironmentID string `mapstructure:"environmentId"`
				}
				if err := args.Decode(&in); err != nil {
					return nil, err
				}
				return payload(remote.RunCollection(ctx, in.CollectionID, in.EnvironmentID))
			}),
		},
	}
}

// payload drops the typed nil a failed remote call returns so that error
// responses always carry a null content.
func payload(p postman.Payload, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}

// NewPostmanRegistry builds the registry for the full catalog.
func NewPostmanRegistry(remote Remote) (*Registry, error) {
	return NewRegistry(Catalog(remote)...)
}
