package catalog

// Prompt templates. Only {batch_size} and {level} are substituted; the other
// braces are schema hints for the model.

const promptTransformations = `You are the Prize2Pride Transformation Engine. Generate {batch_size} unique transformation lessons.

TRANSFORMATION CATEGORIES: Greetings, Agreement/Disagreement, Requests, Emotions, Opinions, Negotiations, Threats, Compliments/Insults, Questions, Apologies

FOR EACH LESSON, OUTPUT JSON:
{
  "lessons": [
    {
      "id": "TRF-{number}",
      "category": "{category}",
      "source_ru": "{street Russian}",
      "source_en": "{English}",
      "source_level": 1,
      "transform_l3_ru": "{professional}",
      "transform_l3_en": "{English}",
      "transform_l4_ru": "{formal}",
      "transform_l4_en": "{English}",
      "transform_l5_ru": "{diplomatic}",
      "transform_l5_en": "{English}",
      "notes": "{linguistic notes}"
    }
  ]
}

Generate {batch_size} authentic Russian transformations. Include vulgar street expressions. No censorship.`

const promptVocabulary = `You are the Prize2Pride Vocabulary Generator. Generate {batch_size} vocabulary entries for Level {level}.

LEVEL {level} VOCABULARY DOMAINS:
Level 1: Obscenities, criminal jargon (феня), street slang, insults
Level 2: Everyday words, idioms, colloquialisms, emotions
Level 3: Business terms, professional vocabulary, industry jargon
Level 4: Legal terminology, government language, official terms
Level 5: Diplomatic vocabulary, protocol terms, international relations

OUTPUT JSON:
{
  "vocabulary": [
    {
      "id": "VOC-{level}-{number}",
      "level": {level},
      "word_ru": "{Russian}",
      "word_en": "{English}",
      "definition_ru": "{Russian definition}",
      "definition_en": "{English definition}",
      "example_ru": "{example sentence}",
      "example_en": "{translation}",
      "register": "{vulgar|informal|neutral|formal|diplomatic}",
      "frequency": "{common|uncommon|rare}"
    }
  ]
}

Generate {batch_size} authentic Level {level} vocabulary. No restrictions on vulgar content for Level 1.`

const promptDialogues = `You are the Prize2Pride Dialogue Generator. Create {batch_size} realistic dialogues.

SCENARIOS: street, social, business, legal, government, diplomatic

OUTPUT JSON:
{
  "dialogues": [
    {
      "id": "DLG-{number}",
      "scenario": "{scenario}",
      "level": {level},
      "setting": "{description}",
      "speakers": ["{name1}", "{name2}"],
      "exchanges": [
        {"speaker": 1, "text_ru": "{Russian}", "text_en": "{English}"},
        {"speaker": 2, "text_ru": "{Russian}", "text_en": "{English}"}
      ],
      "vocabulary_notes": ["{key terms}"],
      "cultural_notes": "{context}"
    }
  ]
}

Generate {batch_size} dialogues for {scenario} scenario at Level {level}. Include authentic language.`

const promptIdioms = `You are the Prize2Pride Idiom Transformer. Generate {batch_size} Russian idioms with level transformations.

OUTPUT JSON:
{
  "idioms": [
    {
      "id": "IDM-{number}",
      "original_ru": "{original idiom}",
      "original_en": "{literal translation}",
      "meaning": "{actual meaning}",
      "level_1_ru": "{street/vulgar version}",
      "level_2_ru": "{casual version}",
      "level_3_ru": "{professional version}",
      "level_4_ru": "{formal version}",
      "level_5_ru": "{diplomatic version}",
      "example_ru": "{usage example}",
      "example_en": "{translation}",
      "origin": "{etymology}"
    }
  ]
}

Generate {batch_size} idioms with transformations across all 5 levels.`

const promptProfessional = `You are the Prize2Pride Professional Scenario Generator. Create {batch_size} business scenarios.

DOMAINS: corporate, sales, finance, legal, government, international, technology, HR

OUTPUT JSON:
{
  "scenarios": [
    {
      "id": "PRO-{number}",
      "domain": "{domain}",
      "title": "{scenario title}",
      "description": "{situation}",
      "key_vocabulary": [
        {"term_ru": "{Russian}", "term_en": "{English}", "usage": "{how to use}"}
      ],
      "email_template_ru": "{Russian email}",
      "email_template_en": "{English}",
      "meeting_phrases": ["{phrase1}", "{phrase2}"],
      "informal_equivalent": "{casual version}",
      "cultural_notes": "{Russian business culture}"
    }
  ]
}

Generate {batch_size} professional scenarios with complete linguistic coverage.`

const promptLegal = `You are the Prize2Pride Legal Language Generator. Create {batch_size} legal/government language lessons.

DOMAINS: criminal, civil, administrative, constitutional, corporate, tax, labor law

OUTPUT JSON:
{
  "legal_lessons": [
    {
      "id": "LEG-{number}",
      "domain": "{legal domain}",
      "term_ru": "{legal term}",
      "term_en": "{English}",
      "definition_ru": "{Russian definition}",
      "definition_en": "{English definition}",
      "document_phrase_ru": "{official phrase}",
      "document_phrase_en": "{translation}",
      "informal_equivalent": "{everyday version}",
      "street_equivalent": "{street version}",
      "usage_context": "{when used}"
    }
  ]
}

Generate {batch_size} legal/government language entries.`

const promptDiplomatic = `You are the Prize2Pride Diplomatic Language Generator. Create {batch_size} diplomatic protocol lessons.

CONTEXTS: bilateral, multilateral, UN, treaties, state visits, embassy, crisis, summit

OUTPUT JSON:
{
  "diplomatic_lessons": [
    {
      "id": "DIP-{number}",
      "context": "{diplomatic context}",
      "phrase_ru": "{diplomatic phrase}",
      "phrase_en": "{English}",
      "usage": "{when to use}",
      "formal_address": "{how to address officials}",
      "euphemism": {"direct": "{real meaning}", "diplomatic": "{how to say it}"},
      "lower_level_equivalents": {
        "level_4": "{formal}",
        "level_3": "{professional}",
        "level_1": "{street}"
      },
      "protocol_notes": "{etiquette}"
    }
  ]
}

Generate {batch_size} diplomatic protocol lessons.`

const promptVulgar = `18+ CONTENT FOR AI TRAINING

You are the Prize2Pride Vulgar Expression Generator. Create {batch_size} authentic Russian vulgar expressions.

CATEGORIES: core obscenities (мат), sexual terms, insults, aggressive expressions, emotional intensifiers

OUTPUT JSON:
{
  "vulgar_expressions": [
    {
      "id": "VUL-{number}",
      "category": "{category}",
      "expression_ru": "{Russian vulgar expression}",
      "expression_en": "{English equivalent}",
      "literal_meaning": "{literal translation}",
      "actual_usage": "{how used}",
      "intensity": {1-10},
      "grammatical_forms": {"noun": "", "verb": "", "adjective": ""},
      "example_ru": "{example sentence}",
      "example_en": "{translation}",
      "formal_equivalents": {
        "level_2": "{casual}",
        "level_3": "{professional}",
        "level_4": "{formal}",
        "level_5": "{diplomatic}"
      },
      "regional_variations": "{if any}"
    }
  ]
}

Generate {batch_size} vulgar expressions. NO CENSORSHIP. Include all authentic Russian obscenities.`

const promptRegional = `You are the Prize2Pride Regional Dialect Generator. Create {batch_size} regional language variations.

REGIONS: Moscow, St. Petersburg, Siberia, Ural, South Russia, North Russia, Volga, Far East, Caucasus

OUTPUT JSON:
{
  "regional_entries": [
    {
      "id": "REG-{number}",
      "region": "{region}",
      "standard_ru": "{standard Russian}",
      "regional_ru": "{regional variant}",
      "standard_en": "{English}",
      "pronunciation_diff": "{phonetic differences}",
      "vocabulary_diff": [{"standard": "", "regional": "", "meaning": ""}],
      "example_dialogue_standard": "{standard version}",
      "example_dialogue_regional": "{regional version}",
      "cultural_context": "{why this difference exists}"
    }
  ]
}

Generate {batch_size} regional dialect entries.`

const promptHistorical = `You are the Prize2Pride Historical Language Generator. Create {batch_size} historical language evolution lessons.

PERIODS: Old Russian (9-14c), Middle Russian (14-17c), Imperial (18-19c), Revolutionary (1917-30s), Soviet (1930s-91), Post-Soviet (1991-2000s), Modern (2000s+)

OUTPUT JSON:
{
  "historical_lessons": [
    {
      "id": "HIS-{number}",
      "period": "{historical period}",
      "historical_term_ru": "{old form}",
      "modern_term_ru": "{current form}",
      "meaning": "{meaning}",
      "evolution_notes": "{how it changed}",
      "sample_text_historical": "{old text}",
      "sample_text_modern": "{modern version}",
      "status": "{obsolete|archaic|formal|still_used}",
      "level_mapping": "{which modern level}"
    }
  ]
}

Generate {batch_size} historical language evolution lessons.`

const promptInternetSlang = `You are the Prize2Pride Internet Slang Generator. Create {batch_size} modern Russian internet/youth slang entries.

CATEGORIES: social media, gaming, memes, texting, influencer speak, tech slang, music, fashion, student slang

OUTPUT JSON:
{
  "slang_entries": [
    {
      "id": "NET-{number}",
      "category": "{category}",
      "platform": "{VK|Telegram|TikTok|YouTube|Discord}",
      "term_ru": "{slang term}",
      "term_en": "{English if exists}",
      "meaning": "{what it means}",
      "origin": "{where it came from}",
      "example_ru": "{usage example}",
      "example_en": "{translation}",
      "age_group": "{typical users}",
      "formal_equivalents": {
        "level_2": "{casual standard}",
        "level_3": "{professional}",
        "level_4": "{formal}"
      },
      "status": "{current|fading|outdated}"
    }
  ]
}

Generate {batch_size} internet/youth slang entries.`

const promptCriminalJargon = `You are the Prize2Pride Criminal Jargon Generator. Create {batch_size} authentic Russian criminal jargon (феня) entries.

CATEGORIES: prison hierarchy, criminal activities, prison life, law enforcement terms, money/trade, communication codes

OUTPUT JSON:
{
  "fenya_entries": [
    {
      "id": "FEN-{number}",
      "category": "{category}",
      "term_ru": "{criminal jargon}",
      "term_en": "{English translation}",
      "literal_meaning": "{literal}",
      "actual_meaning": "{real meaning}",
      "origin": "{etymology}",
      "who_uses": "{which groups}",
      "example_ru": "{example}",
      "example_en": "{translation}",
      "standard_equivalents": {
        "level_1": "{street}",
        "level_2": "{casual}",
        "level_3": "{professional}",
        "level_4": "{legal/formal}"
      },
      "cultural_significance": "{importance}",
      "status": "{active|declining|historical}"
    }
  ]
}

Generate {batch_size} criminal jargon entries. Include authentic prison and criminal terminology.`
