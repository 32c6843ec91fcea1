// Package config provides the YAML run configuration of the resolver:
// which packages to load, which types to resolve, scalar overrides,
// resolver limits and output settings.
//
// # Schema Overview
//
//	version: "1"
//	packages:
//	  - ./petstore
//	  - model-resolver/petstore/inventory
//	# a single root may be given as a plain string; empty means every
//	# named struct in the loaded packages
//	roots: [Pet, Order]
//	scalars:
//	  Money: {type: string, format: decimal}
//	resolver:
//	  max_depth: 512
//	  concurrency: 4
//	  debug: false
//	output:
//	  format: yaml      # yaml or json
//	  path: swagger.yaml
//	  title: Petstore
//	  version: 1.0.0
package config
