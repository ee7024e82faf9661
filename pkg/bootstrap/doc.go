// Package bootstrap renders Bootstrap 5 form markup for the attributes of a
// model.Subject.
//
// A Builder is bound to one subject and a layout (vertical, horizontal or
// inline). Each helper merges caller options with computed defaults and
// returns trusted markup:
//
//	b := bootstrap.New(subject, bootstrap.WithLayout(bootstrap.LayoutHorizontal))
//	out, err := b.StaticControl("email", bootstrap.Options{"extra": "extra arg"})
//	// <div class="mb-3 row">
//	//   <label class="form-label col-form-label col-sm-2 required" for="user_email">Email</label>
//	//   <div class="col-sm-10"><input aria-required="true" class="form-control-plaintext" ... /></div>
//	// </div>
//
// Recognised option keys are listed as Opt* constants. Every other key is
// written as an HTML attribute on the rendered control.
package bootstrap
