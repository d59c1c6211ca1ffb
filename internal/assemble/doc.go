// Package assemble turns raw order records into finished order objects.
//
// Assembly is mapping followed by an ordered list of business-rule steps.
// For an order detail the steps are:
//
//  1. copy order_reward_points from the raw record
//  2. inject the membership line's cost into its prices and the order totals
//  3. aggregate the VIP discount over all lines
//  4. net the shipping discount out of shipping
//  5. regroup bundle children under their parent lines
//
// Order matters: the VIP sum must see the membership line's adjusted prices,
// and bundling must run last so the sum still covers bundle children. Each
// step is a pure function of the order value it receives; line slices are
// copied before they are changed. Running the pipeline twice over its own
// output is not supported (shipping would be netted twice).
//
// An order summary is mapped with the UPPER-case history schema, then gets
// the membership step and tariff surcharge netting. It has no bundling or
// VIP discount.
package assemble
