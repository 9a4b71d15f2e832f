// Package resources holds what the domain resources (loans, banking,
// credit cards) share: the [Caller] they invoke tools through, the
// validate-call-decode template, the widget field of compare responses and
// common value types such as [Money].
//
// Every resource operation follows the same steps:
//
//  1. validate the request locally; a failure is a validation_error and no
//     tool is called
//  2. call the resource's fixed tool through the Caller
//  3. decode the JSON payload of the result envelope
//  4. for compare operations, attach the HTML widget when there is one
package resources
