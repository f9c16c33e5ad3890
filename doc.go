// openfigi: a client for the [OpenFIGI API].
//
// 3 kinds of calls:
//   - Mapping: resolve third-party identifiers to FIGIs in bulk
//   - Filter: free-text search with optional filters, paginated
//   - Values: list the accepted values for the enum-like request fields
//
// Instructions:
//
//  1. Construct a request through a builder.
//
//     - Mapping uses [NewMappingJob], one builder per security.
//
//     - Filter uses [NewQuery].
//
//  2. Set the optional filters through setters (".Set[...](...)").
//
//  3. Build the request: [MappingJobBuilder.Build], [QueryBuilder.Build].
//     The package validates the request in one pass, reducing bad API calls.
//     Requests can also be assembled as struct literals and checked with
//     their Validate methods.
//
//  4. Create a [Client] with [NewClient]. The API key is optional; supplying
//     one raises the rate and batch limits.
//
//  5. Make the call:
//
//     - [Client.Map] returns one [MappingJobResult] per submitted job, in
//     submission order.
//
//     - [Client.Filter] follows the server cursor until the last page and
//     returns every [FigiResult]. [Client.GetTotalNumberOfMatches] returns
//     the match count only.
//
//     - [Client.GetIDTypes], [Client.GetExchCodes] and friends list the
//     current values for the enum-like fields.
//
// [OpenFIGI API]: https://www.openfigi.com/api
package openfigi
