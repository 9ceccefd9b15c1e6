// Package commands implements the tabletgraphic command line.
//
//	tabletgraphic render -c tablet.yaml              # write the configured outputs
//	tabletgraphic render --shape caplet --length 0.012 --width 0.004 --format png
//	tabletgraphic watch -c tablet.yaml               # re-render on every save
//	tabletgraphic paths --shape round --axis length  # print the path data
//
// Geometry flags override the values loaded from the configuration file.
package commands
