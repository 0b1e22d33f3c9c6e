/*
Package flow is a core of dataflow pipelines built from elements and pads.

Concept

Elements are processing units. Each element owns an ordered set of pads,
typed connection points through which data and events flow:

    Source - pad which produces data;
    Sink - pad which consumes data;
    Request - template for pads instantiated on demand.

Every pad has caps, the description of data format. Pads can be linked
only if they have opposite roles and compatible caps. Currently caps are
compatible when their format identifiers are equal.

Linking

Pads are linked with Pad.Link and elements with Element.Link:

    n, err := source.Link(sink)

Element.Link links every source pad of the element with every compatible
sink pad of the other element and returns the number of linked pairs. Links
are symmetric and non-owning: a pad never keeps its peers alive, peers
that were closed or garbage collected are skipped. Linked source pads
forward data to their peers; once no live peer is left, the pad hook is
used again.

Execution

Pads start stopped. Data pushed into stopped or paused pads is dropped and
counted. Once activated, data is propagated synchronously on the caller's
goroutine:

    source.ActivateAllPads()
    sink.ActivateAllPads()
    source.Process(item)

EndOfStream event deactivates the pad which receives it. Element.OnEvent
delivers event to every pad of the element. Components with special
processing or event semantics embed *Element and override Process and
OnEvent.

Pads and elements are not safe for concurrent use.
*/
package flow
