// Package motion implements the closed-form motion models used to animate a
// scroll offset: scroll-like exponential deceleration, critically and
// under-damped springs, and the rubber-band clamp applied while dragging past
// a boundary.
//
// Every model is an immutable value and a pure function of elapsed time, so
// an animation can be sampled at any instant without integrating frame by
// frame. Times are expressed in seconds.
package motion
