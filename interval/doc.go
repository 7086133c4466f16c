/*Package interval implements the half-open integer interval used as the
  common currency of the coordinate systems in this repository: navigation
  context coordinates, feature-relative coordinates, and pixel coordinates.
  Every interval is left-closed and right-open, so intervals that merely touch
  at an endpoint do not overlap.
*/
package interval
