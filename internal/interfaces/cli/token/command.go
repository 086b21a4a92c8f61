package token

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"repoaccess/internal/interfaces/cli/bootstrap"
	"repoaccess/internal/interfaces/cli/fixture"
	"repoaccess/internal/shared/errors"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Reviewer download tokens",
		Long:  `Issue, embed and verify the hash tokens that let reviewers download files of items under review.`,
	}

	cmd.AddCommand(
		newIssueCommand(),
		newURLCommand(),
		newVerifyCommand(),
	)

	return cmd
}

func newIssueCommand() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Print the token of an email address",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := bootstrap.Init(bootstrap.ConfigPath(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), env.Tokens.Issue(email))
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "m", "", "Reviewer email address (required)")
	cmd.MarkFlagRequired("email")

	return cmd
}

type urlOptions struct {
	fixture   string
	requester string
	bundle    string
}

func newURLCommand() *cobra.Command {
	o := &urlOptions{}
	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the download links of a bundle for a requester",
		Long:  `Print one tokenized link per file of the bundle. The requester must be an administrator or a manager of the item's collection, and the item must be under review.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd)
		},
	}

	cmd.Flags().StringVarP(&o.fixture, "fixture", "f", "", "Path to the repository fixture (required)")
	cmd.Flags().StringVarP(&o.requester, "requester", "r", "", "Email of the requester (required)")
	cmd.Flags().StringVarP(&o.bundle, "bundle", "b", "", "Bundle as <item>/<bundle name> (required)")
	cmd.MarkFlagRequired("fixture")
	cmd.MarkFlagRequired("requester")
	cmd.MarkFlagRequired("bundle")

	return cmd
}

func (o *urlOptions) run(cmd *cobra.Command) error {
	itemID, bundleName, ok := strings.Cut(o.bundle, "/")
	if !ok || itemID == "" || bundleName == "" {
		return errors.NewValidationError("bundle must be <item>/<bundle name>", o.bundle)
	}

	env, err := bootstrap.Init(bootstrap.ConfigPath(cmd))
	if err != nil {
		return err
	}
	repo, err := fixture.Load(o.fixture)
	if err != nil {
		return err
	}
	directory, err := env.Directory(repo.Memberships())
	if err != nil {
		return err
	}

	bundle := repo.Bundle(itemID, bundleName)
	if bundle == nil {
		return errors.NewNotFoundError("bundle not found", o.bundle)
	}

	urls, err := env.Downloads(directory).IssueURLs(context.Background(), o.requester, bundle)
	if err != nil {
		return err
	}

	for _, u := range urls {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", color.BlueString(u.Name), u.URL)
	}
	return nil
}

type verifyOptions struct {
	fixture string
	file    string
	hash    string
}

func newVerifyCommand() *cobra.Command {
	o := &verifyOptions{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check whether a token unlocks a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd)
		},
	}

	cmd.Flags().StringVarP(&o.fixture, "fixture", "f", "", "Path to the repository fixture (required)")
	cmd.Flags().StringVar(&o.file, "file", "", "Bitstream ID (required)")
	cmd.Flags().StringVar(&o.hash, "hash", "", "Presented token (required)")
	cmd.MarkFlagRequired("fixture")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("hash")

	return cmd
}

func (o *verifyOptions) run(cmd *cobra.Command) error {
	env, err := bootstrap.Init(bootstrap.ConfigPath(cmd))
	if err != nil {
		return err
	}
	repo, err := fixture.Load(o.fixture)
	if err != nil {
		return err
	}
	directory, err := env.Directory(repo.Memberships())
	if err != nil {
		return err
	}

	bs := repo.Bitstream(o.file)
	if bs == nil {
		return errors.NewNotFoundError("bitstream not found", o.file)
	}

	ok, err := env.Downloads(directory).VerifyDownload(context.Background(), bs, o.hash)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), color.RedString("denied"))
		return errors.NewForbiddenError("token does not grant access", o.file)
	}

	fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("granted"))
	return nil
}
