// Package controls is a small headless control set satisfying the databind capability
// contract. It mirrors a typical mobile toolkit: display-only Label and ImageView, and
// editable TextField, Button, Switch, Slider and Stepper.
//
// The user-edit methods (Type, Tap, Toggle, Slide, Increment, Decrement) change the control
// the way a user would and then notify subscribed handlers. SetValue and the other setters
// change the control silently, which is what bindings use.
//
// Controls are not safe for concurrent use.
package controls
