package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/GregMSThompson/bank-closures/infra/cloudrun"
	"github.com/GregMSThompson/bank-closures/infra/docker"
	"github.com/GregMSThompson/bank-closures/infra/firestore"
	"github.com/GregMSThompson/bank-closures/infra/provider"
	"github.com/GregMSThompson/bank-closures/infra/vertex"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		// set default provider with the correct project
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// firestore backs the extraction store when EXTRACTIONBACKEND=firestore
		err = firestore.SetupFirestore(ctx, prov)
		if err != nil {
			return err
		}

		// the refresh job extracts closure attempts with gemini
		vsvc, err := vertex.SetupVertex(ctx, prov)
		if err != nil {
			return err
		}

		// create docker repo
		repo, err := docker.CreateCloudrunRepo(ctx, prov)
		if err != nil {
			return err
		}

		_, err = cloudrun.SetupCloudRun(ctx, prov, repo, vsvc)
		if err != nil {
			return err
		}

		return nil
	})
}
